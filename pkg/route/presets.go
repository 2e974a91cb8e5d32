package route

import "trackgen/pkg/geo"

// Presets returns the built-in demo routes. Waypoints are hand-picked
// anchors along real roads; everything between them is interpolated.
func Presets() []Route {
	return []Route{
		berlinMunich(),
		wronkiGniezno(),
	}
}

// berlinMunich follows the A9 autobahn corridor. With a 1000-point
// target it reproduces the classic demo track for the tracking app.
func berlinMunich() Route {
	return Route{
		Name:         "berlin-munich",
		Description:  "Berlin to Munich along the A9",
		MinSpacing:   50,
		TargetCount:  1000,
		GapThreshold: 80,
		Waypoints: []geo.Point{
			{Lat: 52.5200, Lon: 13.4050}, // Berlin center
			{Lat: 52.4500, Lon: 13.3500}, // Berlin southwest
			{Lat: 52.3000, Lon: 13.1000}, // Leaving Berlin area
			{Lat: 52.1000, Lon: 12.8000}, // Approaching Dessau
			{Lat: 51.8397, Lon: 12.2431}, // Dessau
			{Lat: 51.4800, Lon: 11.9700}, // Halle area
			{Lat: 51.2000, Lon: 11.6000}, // Between Halle and Weimar
			{Lat: 50.9849, Lon: 11.3239}, // Weimar area
			{Lat: 50.7000, Lon: 11.0000}, // Approaching Jena
			{Lat: 50.4000, Lon: 10.7000}, // Between Jena and Bayreuth
			{Lat: 49.9000, Lon: 10.5000}, // Approaching Bayreuth
			{Lat: 49.9479, Lon: 11.5683}, // Bayreuth
			{Lat: 49.7000, Lon: 11.4000}, // South of Bayreuth
			{Lat: 49.4500, Lon: 11.0780}, // Nuremberg area
			{Lat: 49.4521, Lon: 11.0767}, // Nuremberg center
			{Lat: 49.2000, Lon: 10.9000}, // South of Nuremberg
			{Lat: 48.8000, Lon: 10.8000}, // Approaching Ingolstadt
			{Lat: 48.7665, Lon: 11.4257}, // Ingolstadt
			{Lat: 48.5000, Lon: 11.5000}, // Between Ingolstadt and Munich
			{Lat: 48.3000, Lon: 11.6000}, // Approaching Munich
			{Lat: 48.1351, Lon: 11.5820}, // Munich center
		},
	}
}

// wronkiGniezno follows local roads and the DK92/DK5/DK15 connections
// across Wielkopolska. Denser spacing, no point target.
func wronkiGniezno() Route {
	return Route{
		Name:        "wronki-gniezno",
		Description: "Wronki to Gniezno via DK92",
		MinSpacing:  10,
		Waypoints: []geo.Point{
			{Lat: 52.7065, Lon: 16.3894}, // Wronki town center
			{Lat: 52.7089, Lon: 16.4156}, // Wronki east exit
			{Lat: 52.7124, Lon: 16.4523},
			{Lat: 52.7156, Lon: 16.4891},
			{Lat: 52.7189, Lon: 16.5267}, // Approaching Szamotuly
			{Lat: 52.7223, Lon: 16.5634},
			{Lat: 52.7145, Lon: 16.6123}, // Near Szamotuly
			{Lat: 52.7089, Lon: 16.6587}, // Connecting to DK92
			{Lat: 52.7034, Lon: 16.7045}, // On DK92 eastbound
			{Lat: 52.6978, Lon: 16.7489},
			{Lat: 52.6923, Lon: 16.7923}, // DK92 towards Obrzycko
			{Lat: 52.6867, Lon: 16.8345}, // Near Obrzycko
			{Lat: 52.6812, Lon: 16.8756},
			{Lat: 52.6756, Lon: 16.9156},
			{Lat: 52.6701, Lon: 16.9545}, // Near Murowana Goslina
			{Lat: 52.6645, Lon: 16.9923},
			{Lat: 52.6589, Lon: 17.0289}, // Poznan northern bypass
			{Lat: 52.6534, Lon: 17.0644},
			{Lat: 52.6478, Lon: 17.0987},
			{Lat: 52.6423, Lon: 17.1319}, // Northeast of Poznan
			{Lat: 52.6367, Lon: 17.1640}, // Following DK15
			{Lat: 52.6312, Lon: 17.1950},
			{Lat: 52.6256, Lon: 17.2248},
			{Lat: 52.6201, Lon: 17.2535}, // Approaching Gniezno
			{Lat: 52.6145, Lon: 17.2811},
			{Lat: 52.6089, Lon: 17.3076},
			{Lat: 52.6034, Lon: 17.3330}, // Gniezno suburbs
			{Lat: 52.5978, Lon: 17.3572},
			{Lat: 52.5923, Lon: 17.3803}, // Gniezno inner city
			{Lat: 52.5345, Lon: 17.5928}, // Gniezno city center
		},
	}
}
