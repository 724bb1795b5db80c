package colors

// palette holds the Kanagawa colors shared by the wave, dragon and lotus schemes
var palette = struct {
	// wave
	fujiWhite    string
	fujiGray     string
	sumiInk4     string
	sumiInk6     string
	waveAqua2    string
	oniViolet    string
	crystalBlue  string
	springBlue   string
	springGreen  string
	carpYellow   string
	surimiOrange string
	waveRed      string
	peachRed     string
	samuraiRed   string
	roninYellow  string
	dragonBlue   string
	katanaGray   string

	// dragon
	dragonWhite  string
	dragonAsh    string
	dragonBlack6 string
	dragonViolet string
	dragonAqua   string
	dragonBlue2  string
	dragonGreen  string
	dragonYellow string
	dragonOrange string
	dragonRed    string
	dragonGray3  string

	// lotus
	lotusInk1    string
	lotusGray3   string
	lotusViolet1 string
	lotusViolet4 string
	lotusBlue4   string
	lotusTeal1   string
	lotusGreen   string
	lotusYellow  string
	lotusOrange  string
	lotusRed     string
	lotusRed2    string
}{
	fujiWhite:    "#DCD7BA",
	fujiGray:     "#727169",
	sumiInk4:     "#2A2A37",
	sumiInk6:     "#54546D",
	waveAqua2:    "#7AA89F",
	oniViolet:    "#957FB8",
	crystalBlue:  "#7E9CD8",
	springBlue:   "#7FB4CA",
	springGreen:  "#98BB6C",
	carpYellow:   "#E6C384",
	surimiOrange: "#FFA066",
	waveRed:      "#E46876",
	peachRed:     "#FF5D62",
	samuraiRed:   "#E82424",
	roninYellow:  "#FF9E3B",
	dragonBlue:   "#658594",
	katanaGray:   "#717C7C",

	dragonWhite:  "#C5C9C5",
	dragonAsh:    "#737C73",
	dragonBlack6: "#625E5A",
	dragonViolet: "#8992A7",
	dragonAqua:   "#8EA4A2",
	dragonBlue2:  "#8BA4B0",
	dragonGreen:  "#87A987",
	dragonYellow: "#C4B28A",
	dragonOrange: "#B6927B",
	dragonRed:    "#C4746E",
	dragonGray3:  "#7A8382",

	lotusInk1:    "#545464",
	lotusGray3:   "#8A8980",
	lotusViolet1: "#A09CAC",
	lotusViolet4: "#624C83",
	lotusBlue4:   "#4D699B",
	lotusTeal1:   "#4E8CA2",
	lotusGreen:   "#6F894E",
	lotusYellow:  "#77713F",
	lotusOrange:  "#CC6D00",
	lotusRed:     "#C84053",
	lotusRed2:    "#D7474B",
}
