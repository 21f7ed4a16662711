package plant

// CareGuide is a short encyclopaedia entry for one plant type.
type CareGuide struct {
	Type     Type
	Light    string
	Water    string
	Soil     string
	Tips     []string
	Examples []string
}

var careGuides = map[Type]CareGuide{
	TypeFlowering: {
		Type:     TypeFlowering,
		Light:    "Six or more hours of direct sun while buds are forming.",
		Water:    "Keep the soil evenly moist. Water at the base, not over the blooms.",
		Soil:     "Rich, well-drained loam with added compost.",
		Tips:     []string{"Deadhead spent flowers to encourage new buds.", "Feed every two weeks during the growing season."},
		Examples: []string{"Rose", "Orchid", "Peace lily"},
	},
	TypeNonFlowering: {
		Type:     TypeNonFlowering,
		Light:    "Bright, indirect light. Most tolerate some shade.",
		Water:    "Water when the top few centimetres of soil are dry.",
		Soil:     "General-purpose potting mix.",
		Tips:     []string{"Wipe leaves to keep them dust free.", "Rotate the pot monthly for even growth."},
		Examples: []string{"Monstera", "Rubber plant", "Pothos"},
	},
	TypeSucculent: {
		Type:     TypeSucculent,
		Light:    "Full sun or the brightest window available.",
		Water:    "Soak thoroughly, then let the soil dry out completely.",
		Soil:     "Gritty cactus mix with extra perlite.",
		Tips:     []string{"Overwatering is the most common cause of loss.", "Water even less in winter."},
		Examples: []string{"Golden barrel cactus", "Aloe vera", "Echeveria"},
	},
	TypeFern: {
		Type:     TypeFern,
		Light:    "Filtered light. Direct sun scorches fronds.",
		Water:    "Never let the soil dry out. Mist to raise humidity.",
		Soil:     "Peat-based mix that holds moisture.",
		Tips:     []string{"A bathroom or kitchen often suits ferns well.", "Trim brown fronds at the base."},
		Examples: []string{"Boston fern", "Maidenhair fern", "Bird's nest fern"},
	},
	TypeHerb: {
		Type:     TypeHerb,
		Light:    "At least six hours of sun a day.",
		Water:    "Water when the surface feels dry. Avoid soggy roots.",
		Soil:     "Light, free-draining mix.",
		Tips:     []string{"Harvest often to keep plants bushy.", "Pinch out flower stems to prolong leaf growth."},
		Examples: []string{"Basil", "Mint", "Rosemary"},
	},
}

// Care returns the care guide for t. Unknown types yield ok=false.
func Care(t Type) (CareGuide, bool) {
	g, ok := careGuides[t]
	return g, ok
}

// CareGuides returns every guide in Types order.
func CareGuides() []CareGuide {
	guides := make([]CareGuide, 0, len(Types))
	for _, t := range Types {
		guides = append(guides, careGuides[t])
	}
	return guides
}
