package catalogue

import "github.com/piwi3910/TrayCalc/internal/model"

// Values are averaged from typical manufacturer data and are meant for
// planning checks. Diameter in mm, weight in kg/m.
func defaultCables() []model.CableType {
	c := model.NewCableType
	return []model.CableType{
		// LV single-core PVC 450/750 V (Cu)
		c("Cu 1C 1.5mm² PVC", 5.0, 0.036),
		c("Cu 1C 2.5mm² PVC", 5.5, 0.055),
		c("Cu 1C 4mm² PVC", 6.0, 0.075),
		c("Cu 1C 6mm² PVC", 6.8, 0.110),
		c("Cu 1C 10mm² PVC", 8.0, 0.170),
		c("Cu 1C 16mm² PVC", 9.5, 0.260),
		c("Cu 1C 25mm² PVC", 11.5, 0.380),
		c("Cu 1C 35mm² PVC", 13.0, 0.520),
		c("Cu 1C 50mm² PVC", 15.0, 0.720),
		c("Cu 1C 70mm² PVC", 17.0, 1.000),
		c("Cu 1C 95mm² PVC", 19.5, 1.290),
		c("Cu 1C 120mm² PVC", 21.0, 1.540),

		// LV multi-core PVC, 3 core
		c("Cu 3C 1.5mm² PVC", 9.5, 0.22),
		c("Cu 3C 2.5mm² PVC", 11.0, 0.30),
		c("Cu 3C 4mm² PVC", 13.0, 0.45),
		c("Cu 3C 6mm² PVC", 15.0, 0.65),
		c("Cu 3C 10mm² PVC", 18.0, 1.05),
		c("Cu 3C 16mm² PVC", 21.0, 1.55),
		c("Cu 3C 25mm² PVC", 25.0, 2.40),
		c("Cu 3C 35mm² PVC", 28.0, 3.20),
		c("Cu 3C 50mm² PVC", 32.0, 4.40),
		c("Cu 3C 70mm² PVC", 36.0, 5.90),
		c("Cu 3C 95mm² PVC", 42.0, 7.70),

		// LV multi-core PVC, 4 core
		c("Cu 4C 1.5mm² PVC", 10.0, 0.25),
		c("Cu 4C 2.5mm² PVC", 12.0, 0.34),
		c("Cu 4C 4mm² PVC", 14.5, 0.52),
		c("Cu 4C 6mm² PVC", 16.5, 0.75),
		c("Cu 4C 10mm² PVC", 20.0, 1.20),
		c("Cu 4C 16mm² PVC", 23.0, 1.80),
		c("Cu 4C 25mm² PVC", 27.0, 2.70),
		c("Cu 4C 35mm² PVC", 30.0, 3.60),

		// LV multi-core PVC, 5 core
		c("Cu 5C 1.5mm² PVC", 11.0, 0.29),
		c("Cu 5C 2.5mm² PVC", 13.0, 0.40),
		c("Cu 5C 4mm² PVC", 15.5, 0.60),
		c("Cu 5C 6mm² PVC", 17.5, 0.85),
		c("Cu 5C 10mm² PVC", 21.0, 1.35),
		c("Cu 5C 16mm² PVC", 24.0, 2.00),

		// Armoured LV power, 4 core
		c("Cu 4C 10mm² XLPE/SWA/PVC", 24.0, 1.85),
		c("Cu 4C 16mm² XLPE/SWA/PVC", 27.0, 2.45),
		c("Cu 4C 25mm² XLPE/SWA/PVC", 31.0, 3.35),
		c("Cu 4C 35mm² XLPE/SWA/PVC", 35.0, 4.50),
		c("Cu 4C 50mm² XLPE/SWA/PVC", 38.0, 5.60),
		c("Cu 4C 70mm² XLPE/SWA/PVC", 43.0, 7.50),
		c("Cu 4C 95mm² XLPE/SWA/PVC", 48.0, 9.60),
		c("Cu 4C 120mm² XLPE/SWA/PVC", 52.0, 11.7),

		// Armoured LV power, 5 core
		c("Cu 5C 0.75mm² XLPE/SWA/PVC", 17.0, 1.55),
		c("Cu 5C 1.0mm² XLPE/SWA/PVC", 18.0, 1.75),
		c("Cu 5C 1.5mm² XLPE/SWA/PVC", 19.5, 2.05),
		c("Cu 5C 2.5mm² XLPE/SWA/PVC", 21.5, 2.55),
		c("Cu 5C 4mm² XLPE/SWA/PVC", 26.0, 2.90),
		c("Cu 5C 6mm² XLPE/SWA/PVC", 28.0, 3.60),
		c("Cu 5C 10mm² XLPE/SWA/PVC", 32.0, 4.80),
		c("Cu 5C 16mm² XLPE/SWA/PVC", 36.0, 6.40),
		c("Cu 5C 25mm² XLPE/SWA/PVC", 41.0, 8.60),

		// Control / I/O
		c("Control 7C 1.5mm² PVC", 13.5, 0.33),
		c("Control 12C 1.5mm² PVC", 17.5, 0.52),
		c("Control 24C 1.5mm² PVC", 23.0, 0.95),
		c("Control 7C 2.5mm² PVC", 15.5, 0.48),
		c("Control 12C 2.5mm² PVC", 20.0, 0.78),

		// Instrumentation, twisted pair
		c("Instr 2x2x0.75mm² overall screen", 9.0, 0.12),
		c("Instr 4x2x0.75mm² overall screen", 11.5, 0.19),
		c("Instr 8x2x0.75mm² overall screen", 15.0, 0.32),

		// Copper data
		c("CAT5e U/UTP", 5.3, 0.030),
		c("CAT5e F/UTP", 5.8, 0.035),
		c("CAT6 U/UTP (indoor)", 6.1, 0.040),
		c("CAT6 F/UTP", 6.5, 0.045),
		c("CAT6A F/UTP", 7.6, 0.055),
		c("CAT7 S/FTP", 8.2, 0.065),

		// Fibre
		c("Fibre 4C tight-buffer indoor", 6.0, 0.030),
		c("Fibre 12C loose-tube indoor", 8.0, 0.045),
		c("Fibre 24C loose-tube indoor", 10.5, 0.065),
		c("Fibre 48C loose-tube indoor", 13.0, 0.090),

		// Coax
		c("RG59/U coax", 6.1, 0.040),
		c("RG6/U coax", 6.9, 0.055),
		c("RG11/U coax", 10.5, 0.090),

		// Flexible power leads
		c("H07RN-F 3G1.5mm²", 11.3, 0.20),
		c("H07RN-F 3G2.5mm²", 12.2, 0.26),
		c("H07RN-F 3G4mm²", 13.5, 0.36),
		c("H07RN-F 5G2.5mm²", 14.5, 0.36),
	}
}
