package physics

// Physical constants (SI) and unit conversions used by the kernels.
const (
	Gravity         = 6.67430e-11    // m^3 kg^-1 s^-2
	StefanBoltzmann = 5.670374419e-8 // W m^-2 K^-4
	Boltzmann       = 1.380649e-23   // J/K
	HydrogenMass    = 1.6735575e-27  // kg
	MeanMolecular   = 2.33           // mean molecular weight of molecular gas

	SolarMass       = 1.98892e30 // kg
	SolarLuminosity = 3.828e26   // W
	SolarRadius     = 6.957e8    // m
	SolarLifetime   = 1e10       // main-sequence lifetime of the sun, years

	EarthMass   = 5.9722e24 // kg
	EarthRadius = 6.371e6   // m

	AU     = 1.495978707e11       // m
	Parsec = 3.085677581491367e16 // m
	Year   = 3.15576e7            // s
)

// EarthToSolarMass converts Earth masses to solar masses.
const EarthToSolarMass = EarthMass / SolarMass
