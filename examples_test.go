package postaddr

import "strings"

// example is a loosely formatted address with the canonical text and the
// display lines (country line excluded) it must produce.
type example struct {
	name      string
	country   string
	text      string
	canonical string
	display   []string
}

func (e example) wantDisplay() string {
	return strings.Join(append(append([]string(nil), e.display...), MustCountry(e.country).Name()), "\n")
}

var examples = []example{
	{
		name:      "US state code",
		country:   "US",
		text:      "US2John Smith\n\n1 Main St\n\nNew York\n10001\nNY",
		canonical: "US2John Smith\n\n1 Main St\n\nNew York\n10001\n32",
		display:   []string{"1 Main St", "House John Smith", "New York, NY 10001"},
	},
	{
		name:      "US state name",
		country:   "US",
		text:      "US3Acme Corp\nSuite 400\n100 Capitol Ave\n\nSpringfield\n62701\nIllinois",
		canonical: "US3Acme Corp\nSuite 400\n100 Capitol Ave\n\nSpringfield\n62701\n13",
		display:   []string{"100 Capitol Ave", "Office Acme Corp", "Suite 400", "Springfield, IL 62701"},
	},
	{
		name:      "GB postcode without space",
		country:   "GB",
		text:      "GB2Jane Doe\n\n10 Downing Street\nWestminster\n\nsw1a2aa\nLondon",
		canonical: "GB2Jane Doe\n\n10 Downing Street\nWestminster\n\nSW1A 2AA\nLondon",
		display:   []string{"House Jane Doe", "10 Downing Street", "Westminster", "LONDON", "SW1A 2AA"},
	},
	{
		name:      "CH with Postfach",
		country:   "CH",
		text:      "CH3Acme AG\nHaus Zentrum\nBahnhofstrasse 1\nZürich\n8001\nPostfach 123",
		canonical: "CH3Acme AG\nHaus Zentrum\nBahnhofstrasse 1\nZürich\n8001\n123",
		display:   []string{"Office Acme AG", "Haus Zentrum", "Bahnhofstrasse 1", "Postfach 123", "CH-8001 Zürich"},
	},
	{
		name:      "AE emirate and PO box",
		country:   "AE",
		text:      "AE1Al Noor\n\nJumeirah Beach Road\nJumeirah\nDubai\nPO Box 1234",
		canonical: "AE1Al Noor\n\nJumeirah Beach Road\nJumeirah\n2\n1234",
		display:   []string{"Villa Al Noor", "Jumeirah Beach Road", "Jumeirah", "Dubai", "P.O. Box 1234"},
	},
	{
		name:      "IN state and district",
		country:   "IN",
		text:      "IN2Ravi Kumar\n\nMG Road\nKadavanthra\n682020\nKadavanthra\nErnakulam\nKerala",
		canonical: "IN2Ravi Kumar\n\nMG Road\nKadavanthra\n682020\nKadavanthra\n1\n11",
		display:   []string{"House Ravi Kumar", "MG Road", "Kadavanthra", "Ernakulam - 682020", "Kerala"},
	},
	{
		name:      "MY postcode and town",
		country:   "MY",
		text:      "MY0Suite 5\nMenara ABC\nJalan Ampang\nKampung Baru\n50450\nKuala Lumpur\nKuala Lumpur",
		canonical: "MY0Suite 5\nMenara ABC\nJalan Ampang\nKampung Baru\n50450\n13\nKuala Lumpur",
		display:   []string{"Apartment Suite 5", "Menara ABC", "Jalan Ampang", "Kampung Baru", "50450 Kuala Lumpur", "Kuala Lumpur"},
	},
	{
		name:      "PK province and district",
		country:   "PK",
		text:      "PK2Ali Khan\n\nMall Road\nGulberg\nGulberg III\n54000\nLahore\nPunjab",
		canonical: "PK2Ali Khan\n\nMall Road\nGulberg\nGulberg III\n54000\n17\n4",
		display:   []string{"House Ali Khan", "Mall Road", "Gulberg", "Gulberg III", "Lahore 54000", "Punjab"},
	},
	{
		name:      "SG PO box with post office",
		country:   "SG",
		text:      "SG3Widget Pte Ltd\nTower One\n1 Orchard Road\n\n912345\nPO Box 5\nTanglin",
		canonical: "SG3Widget Pte Ltd\nTower One\n1 Orchard Road\n\n912345\n5\nTanglin",
		display:   []string{"Office Widget Pte Ltd", "Tower One", "1 Orchard Road", "P.O. Box 5", "Tanglin Post Office", "Singapore 912345"},
	},
	{
		name:      "SG trailing blank lines",
		country:   "SG",
		text:      "SG3Widget Pte Ltd\nTower One\n1 Orchard Road\n\n238801\n\n",
		canonical: "SG3Widget Pte Ltd\nTower One\n1 Orchard Road\n\n238801\n\n",
		display:   []string{"Office Widget Pte Ltd", "Tower One", "1 Orchard Road", "Singapore 238801"},
	},
	{
		name:      "generic format",
		country:   "FR",
		text:      "FR2Marie Curie\n\n1 Rue de Rivoli\n\nParis\n75001",
		canonical: "FR2Marie Curie\n\n1 Rue de Rivoli\n\nParis\n75001",
		display:   []string{"House Marie Curie", "1 Rue de Rivoli", "Paris", "75001"},
	},
}
