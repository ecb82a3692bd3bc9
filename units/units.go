// Package units declares a mechanics system (mass, length, time) and a
// catalogue of common named units over it.
//
// Every unit is a plain physunit.Unit; quantities are built with
// physunit.New:
//
//	d := physunit.New(units.Day, 1.0)
//	s, _ := d.In(units.Second) // 86400
package units

import (
	"github.com/hupe1980/physunit"
	"github.com/hupe1980/physunit/scale"
)

// Mechanics is the system of the base dimensions mass, length and time.
var Mechanics = physunit.NewSystemBuilder().
	Base("mass", "M").
	Base("length", "L").
	Base("time", "T").
	MustBuild()

// Dimensions.
var (
	Dimensionless = Mechanics.Dimensionless()
	Mass          = Mechanics.MustBase("mass")
	Length        = Mechanics.MustBase("length")
	Time          = Mechanics.MustBase("time")

	Speed        = physunit.Must(Length.Divide(Time))
	Acceleration = physunit.Must(Speed.Divide(Time))
	Force        = physunit.Must(Mass.Multiply(Acceleration))
	Energy       = physunit.Must(Force.Multiply(Length))
	Power        = physunit.Must(Energy.Divide(Time))
)

// Mass units.
var (
	Kilogram = Mass
	Gram     = physunit.Must(Kilogram.Derive(scale.Milli))
	Pound    = physunit.Must(Kilogram.DeriveRatio(45359237, 100000000))
)

// Length units.
var (
	Meter      = Length
	Kilometer  = physunit.Must(Meter.Derive(scale.Kilo))
	Mile       = physunit.Must(Meter.DeriveRatio(1609344, 1000))
	Millimeter = physunit.Must(Meter.Derive(scale.Milli))
	Centimeter = physunit.Must(Meter.Derive(scale.Centi))
	Inch       = physunit.Must(Centimeter.DeriveRatio(254, 100))
	Foot       = physunit.Must(Inch.DeriveRatio(12, 1))
	Yard       = physunit.Must(Foot.DeriveRatio(3, 1))
)

// Time units.
var (
	Second      = Time
	Millisecond = physunit.Must(Second.Derive(scale.Milli))
	Minute      = physunit.Must(Second.DeriveRatio(60, 1))
	Hour        = physunit.Must(Minute.DeriveRatio(60, 1))
	Day         = physunit.Must(Hour.DeriveRatio(24, 1))
)

// Speed units.
var (
	MeterPerSecond   = Speed
	KilometerPerHour = physunit.Must(Kilometer.Divide(Hour))
	MilePerHour      = physunit.Must(Mile.Divide(Hour))
)

// Energy and acceleration units.
var (
	Joule       = Energy
	KiloJoule   = physunit.Must(Joule.Derive(scale.Kilo))
	KiloCalorie = physunit.Must(KiloJoule.DeriveRatio(4184, 1000))
	GForce      = physunit.Must(Acceleration.DeriveRatio(98, 10))
)
