package unit

func coeffs(kg, m, s int) SICoefficients {
	var c SICoefficients
	c[BaseKilogram] = kg
	c[BaseMeter] = m
	c[BaseSecond] = s
	return c
}

// Dimensionless.
var (
	Unitless = NewStandard("Dimensionless", "unitless", "1", SICoefficients{})
	Percent  = NewScaled("percent", "%", Unitless, 0.01)
)

// Length.
var (
	Meter        = NewStandard("Length", "meter", "m", coeffs(0, 1, 0))
	Kilometer    = NewScaled("kilometer", "km", Meter, 1000)
	Centimeter   = NewScaled("centimeter", "cm", Meter, 0.01)
	Millimeter   = NewScaled("millimeter", "mm", Meter, 0.001)
	Mile         = NewScaled("mile", "mi", Meter, 1609.344)
	Yard         = NewScaled("yard", "yd", Meter, 0.9144)
	Foot         = NewScaled("foot", "ft", Meter, 0.3048)
	Inch         = NewScaled("inch", "in", Meter, 0.0254)
	NauticalMile = NewScaled("nautical mile", "NM", Meter, 1852)
)

// Duration and time.
var (
	Second      = NewStandard("Duration", "second", "s", coeffs(0, 0, 1))
	Millisecond = NewScaled("millisecond", "ms", Second, 0.001)
	Minute      = NewScaled("minute", "min", Second, 60)
	Hour        = NewScaled("hour", "h", Second, 3600)
	Day         = NewScaled("day", "d", Second, 86400)
)

// Speed.
var (
	MeterPerSecond   = NewStandard("Speed", "meter per second", "m/s", coeffs(0, 1, -1))
	KilometerPerHour = NewScaled("kilometer per hour", "km/h", MeterPerSecond, 1000.0/3600.0)
	MilePerHour      = NewScaled("mile per hour", "mi/h", MeterPerSecond, 1609.344/3600.0)
	Knot             = NewScaled("knot", "kt", MeterPerSecond, 1852.0/3600.0)
)

// Acceleration.
var (
	MeterPerSecond2           = NewStandard("Acceleration", "meter per second squared", "m/s2", coeffs(0, 1, -2))
	KilometerPerHourPerSecond = NewScaled("kilometer per hour per second", "km/h/s", MeterPerSecond2, 1000.0/3600.0)
	StandardGravity           = NewScaled("standard gravity", "gn", MeterPerSecond2, 9.80665)
)

// Mass.
var (
	Kilogram = NewStandard("Mass", "kilogram", "kg", coeffs(1, 0, 0))
	Gram     = NewScaled("gram", "g", Kilogram, 0.001)
	Tonne    = NewScaled("tonne", "t", Kilogram, 1000)
)

// Area.
var (
	SquareMeter     = NewStandard("Area", "square meter", "m2", coeffs(0, 2, 0))
	SquareKilometer = NewScaled("square kilometer", "km2", SquareMeter, 1e6)
	Hectare         = NewScaled("hectare", "ha", SquareMeter, 1e4)
)

// Temperature.
var (
	Kelvin     = NewStandard("Temperature", "kelvin", "K", SICoefficients{BaseKelvin: 1})
	Celsius    = NewOffset("degree Celsius", "°C", Kelvin, 1, 273.15)
	Fahrenheit = NewOffset("degree Fahrenheit", "°F", Kelvin, 5.0/9.0, 459.67*5.0/9.0)
)

// Frequency, e.g. a traffic flow in vehicles per hour.
var (
	PerSecond = NewStandard("Frequency", "per second", "1/s", coeffs(0, 0, -1))
	PerHour   = NewScaled("per hour", "1/h", PerSecond, 1.0/3600.0)
)

// Linear density, e.g. vehicles per kilometer of lane.
var (
	PerMeter     = NewStandard("LinearDensity", "per meter", "1/m", coeffs(0, -1, 0))
	PerKilometer = NewScaled("per kilometer", "1/km", PerMeter, 0.001)
)

// Force.
var Newton = NewStandard("Force", "newton", "N", coeffs(1, 1, -2))
