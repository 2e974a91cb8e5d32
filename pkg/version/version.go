package version

// Version is the current trackgen release.
var Version = "0.3.0"
