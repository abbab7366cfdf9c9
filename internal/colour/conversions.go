package colour

// Conversions holds one colour in every supported model.
type Conversions struct {
	Hex  string `json:"hex"`
	RGB  RGB    `json:"rgb"`
	HSV  HSV    `json:"hsv"`
	HSL  HSL    `json:"hsl"`
	CMYK CMYK   `json:"cmyk"`
	LAB  LAB    `json:"lab"`
	LCH  LCH    `json:"lch"`
}

// Convert expresses rgb in every supported model.
func Convert(rgb RGB) Conversions {
	lab := RGBToLAB(rgb)
	return Conversions{
		Hex:  RGBToHex(rgb),
		RGB:  rgb,
		HSV:  RGBToHSV(rgb),
		HSL:  RGBToHSL(rgb),
		CMYK: RGBToCMYK(rgb),
		LAB:  lab,
		LCH:  LABToLCH(lab),
	}
}

// Rows returns label and notation pairs in display order.
func (c Conversions) Rows() [][2]string {
	return [][2]string{
		{"HEX", c.Hex},
		{"RGB", c.RGB.String()},
		{"HSV", c.HSV.String()},
		{"HSL", c.HSL.String()},
		{"CMYK", c.CMYK.String()},
		{"LAB", c.LAB.String()},
		{"LCH", c.LCH.String()},
	}
}
