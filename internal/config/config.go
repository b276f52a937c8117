package config

const (
	// video output
	VideoFPS       = 4
	VideoSuffix    = ".mp4"
	VideoCodec     = "libx264"
	VideoPixFmtIn  = "rgb24"
	VideoPixFmtOut = "yuv420p"
	FFmpegBin      = "ffmpeg"

	// mask overlay, color channels in [0, 1]
	MaskOpacity = 0.8
	MaskColorR  = 1.0
	MaskColorG  = 0.0
	MaskColorB  = 0.0
)
