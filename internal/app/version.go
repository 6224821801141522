package app

// Build information, set through ldflags.
var (
	Version   = "dev"
	GitTag    = ""
	BuildTime = ""
)
