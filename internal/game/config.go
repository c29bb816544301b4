package game

// Layout (canvas pixels).
const (
	LayoutMargin        = 40.0
	LayoutMaxWidth      = 900.0
	LayoutPanelTop      = 80.0
	LayoutPanelHeight   = 120.0
	LayoutOptionsOffset = 150.0
	LayoutOptionHeight  = 60.0
	LayoutOptionGap     = 14.0
	LayoutButtonW       = 160.0
	LayoutButtonH       = 48.0
	LayoutButtonGap     = 24.0
	PanelRadius         = 12.0
	OptionRadius        = 10.0
)

// Populations.
const (
	CloudCount         = 24
	StormCloudCount    = 8
	MaxParticles       = 4000
	MaxConfetti        = 1200
	TrailCap           = 20
	TrailCapHeld       = 40
	TrailFadeSeconds   = 0.6
	ConfettoMargin     = 50.0
	CloudFadeRate      = 0.02 // per-frame lerp fraction at 60 Hz
	CloudFadePerfect   = 0.12
	CloudFadeVisible   = 1.0
	ParticleGravity    = 432.0 // px/s^2
	ParticleLifetime   = 2.0   // seconds
	BubbleLifetime     = 4.0
	BubbleBuoyancy     = -14.0
	ConfettoFlutterHz  = 0.6
	ConfettoFlutterAmp = 36.0
	MaxRainDrops       = 600
	RainRate           = 150.0 // drops per second at intensity 1
	RainSpeed          = 420.0 // px/s
	RainWindMax        = 60.0
	RainGust           = 12.0
)

// Burst sizes.
const (
	SelectBurstCount  = 18
	SuccessBurstCount = 28
	FailureBurstCount = 18
	DragSparkCount    = 2
	PerfectConfetti   = 320
	HighConfetti      = 220
	MidBubbles        = 40
	LowDebris         = 80
)

// MaxFrameDT bounds a single tick so a stalled window does not teleport
// entities.
const MaxFrameDT = 0.1
