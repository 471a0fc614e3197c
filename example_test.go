package coordconv_test

import (
	"fmt"

	"github.com/tzneal/coordconv/v2"
)

func ExampleLatLon_ToMGRS() {
	geo, _ := coordconv.NewLatLon(0, 0)
	mgrs, _ := geo.ToMGRS(5)
	fmt.Println(mgrs)
	// Output: 31NAA6602100000
}

func ExampleLatLon_ToUtmUps() {
	geo, _ := coordconv.NewLatLon(40.748333, -73.985278)
	u := geo.ToUtmUps()
	fmt.Printf("%s %.2f %.2f\n", u.ZoneString(), u.Easting(), u.Northing())
	// Output: 18n 585664.12 4511315.42
}

func ExampleParseMGRS() {
	mgrs, err := coordconv.ParseMGRS("18T WL 85664 11315")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(mgrs.GridZoneDesignation(), mgrs.SquareID(), mgrs.Precision())
	fmt.Println(mgrs.ToUtmUps())
	// Output:
	// 18T WL 5
	// 18n 585664 4511315
}

func ExampleMGRS_WithPrecision() {
	mgrs, _ := coordconv.ParseMGRS("18TWL8566411315")
	for _, p := range []int{0, 2, 7} {
		coarse, _ := mgrs.WithPrecision(p)
		fmt.Println(coarse)
	}
	// Output:
	// 18TWL
	// 18TWL8511
	// 18TWL85664001131500
}

func ExampleParseUtmUps() {
	u, err := coordconv.ParseUtmUps("s 2000000 2000000")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(u.IsUPS(), u.ToLatLon().Latitude())
	// Output: true -90
}
