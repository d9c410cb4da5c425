package geom

// Preset is a named view of the plane.
type Preset struct {
	Name   string
	Bounds Bounds
}

// region builds Bounds from axis ranges.
func region(xmin, xmax, ymin, ymax float64) Bounds {
	return Bounds{UpperLeft: complex(xmin, ymax), LowerRight: complex(xmax, ymin)}
}

// Default is the view the command line example renders.
var Default = Bounds{UpperLeft: complex(-1.20, 0.35), LowerRight: complex(-1.0, 0.20)}

// Presets are well known landmarks, Default first.
var Presets = []Preset{
	{Name: "Reference", Bounds: Default},
	{Name: "Full set", Bounds: region(-2.5, 1.0, -1.25, 1.25)},
	{Name: "Seahorse Valley", Bounds: region(-0.8, -0.7, 0.05, 0.15)},
	{Name: "Elephant Valley", Bounds: region(0.25, 0.35, -0.05, 0.05)},
	{Name: "Spiral Minibrot", Bounds: region(-0.7435, -0.7420, 0.1310, 0.1325)},
	{Name: "Triple Spiral", Bounds: region(-0.7480, -0.7450, 0.0950, 0.0980)},
	{Name: "Valley of the Dragon", Bounds: region(-0.7400, -0.7350, 0.1800, 0.1850)},
}
