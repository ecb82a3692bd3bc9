package scale

// SI prefixes.
var (
	Nano  = MustNew(1, 1_000_000_000)
	Micro = MustNew(1, 1_000_000)
	Milli = MustNew(1, 1_000)
	Centi = MustNew(1, 100)
	Deci  = MustNew(1, 10)
	Deka  = MustNew(10, 1)
	Hecto = MustNew(100, 1)
	Kilo  = MustNew(1_000, 1)
	Mega  = MustNew(1_000_000, 1)
	Giga  = MustNew(1_000_000_000, 1)
	Tera  = MustNew(1_000_000_000_000, 1)
	Peta  = MustNew(1_000_000_000_000_000, 1)
	Exa   = MustNew(1_000_000_000_000_000_000, 1)
)
