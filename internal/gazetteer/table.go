package gazetteer

// staticCodes is the seed table of lower-cased city and locality names to
// SkyScanner-style location codes. It carries the full map the service
// launched with, suburbs included; everything else goes through the
// dynamic resolver.
var staticCodes = map[string]string{
	// Major US cities
	"new york":      "NYCA",
	"nyc":           "NYCA",
	"manhattan":     "NYCA",
	"brooklyn":      "NYCA",
	"queens":        "NYCA",
	"bronx":         "NYCA",
	"staten island": "NYCA",

	"los angeles":   "LAXA",
	"la":            "LAXA",
	"hollywood":     "LAXA",
	"beverly hills": "LAXA",

	"chicago":        "CHIA",
	"houston":        "HOUA",
	"dallas":         "DFWA",
	"phoenix":        "PHXA",
	"san antonio":    "SATA",
	"san diego":      "SANA",
	"san francisco":  "SFOA",
	"sf":             "SFOA",
	"san jose":       "SJCA",
	"austin":         "AUSA",
	"seattle":        "SEAA",
	"denver":         "DENA",
	"washington":     "WASA",
	"dc":             "WASA",
	"washington dc":  "WASA",
	"boston":         "BOSA",
	"miami":          "MIAA",
	"atlanta":        "ATLA",
	"las vegas":      "LASA",
	"vegas":          "LASA",
	"philadelphia":   "PHLA",
	"detroit":        "DETA",
	"portland":       "PDXA",
	"orlando":        "ORLA",
	"tampa":          "TPAA",
	"nashville":      "BNAA",
	"new orleans":    "MSYA",
	"charlotte":      "CLTA",
	"minneapolis":    "MSPA",
	"cleveland":      "CLEA",
	"pittsburgh":     "PITA",
	"cincinnati":     "CVGA",
	"kansas city":    "MCIA",
	"st louis":       "STLA",
	"indianapolis":   "INDA",
	"columbus":       "CMHA",
	"milwaukee":      "MWEA",
	"oklahoma city":  "OKCA",
	"memphis":        "MEMA",
	"louisville":     "SDFA",
	"baltimore":      "BWIA",
	"salt lake city": "SLCA",
	"albuquerque":    "ABQA",
	"tucson":         "TUSA",
	"fresno":         "FATA",
	"sacramento":     "SMFA",

	// California localities mapped onto their serving airports
	"long beach":       "LBGA",
	"oakland":          "OAKA",
	"bakersfield":      "BFLA",
	"anaheim":          "SNAA",
	"santa ana":        "SNAA",
	"riverside":        "ONTAA",
	"stockton":         "SCKA",
	"irvine":           "SNAA",
	"fremont":          "SJCA",
	"san bernardino":   "ONTAA",
	"modesto":          "MODA",
	"fontana":          "ONTAA",
	"oxnard":           "OXRA",
	"moreno valley":    "ONTAA",
	"glendale":         "LAXA",
	"huntington beach": "LBGA",
	"santa clarita":    "LAXA",
	"garden grove":     "SNAA",
	"oceanside":        "SANAA",
	"rancho cucamonga": "ONTAA",
	"santa rosa":       "STSA",
	"ontario":          "ONTAA",
	"elk grove":        "SMFA",
	"corona":           "ONTAA",
	"lancaster":        "LAXA",
	"palmdale":         "LAXA",
	"salinas":          "SJCA",
	"hayward":          "OAKA",
	"pomona":           "ONTAA",
	"escondido":        "SANAA",
	"sunnyvale":        "SJCA",
	"torrance":         "LAXA",
	"pasadena":         "LAXA",
	"orange":           "SNAA",
	"fullerton":        "SNAA",
	"thousand oaks":    "LAXA",
	"visalia":          "FATA",
	"simi valley":      "LAXA",
	"concord":          "OAKA",
	"roseville":        "SMFA",
	"santa clara":      "SJCA",
	"vallejo":          "OAKA",
	"victorville":      "ONTAA",

	// Illinois localities mapped onto Chicago (St Louis where closer)
	"elgin":             "CHIA",
	"springfield":       "CHIA",
	"peoria":            "CHIA",
	"rockford":          "CHIA",
	"joliet":            "CHIA",
	"naperville":        "CHIA",
	"champaign":         "CHIA",
	"bloomington":       "CHIA",
	"decatur":           "CHIA",
	"arlington heights": "CHIA",
	"evanston":          "CHIA",
	"schaumburg":        "CHIA",
	"bolingbrook":       "CHIA",
	"palatine":          "CHIA",
	"skokie":            "CHIA",
	"des plaines":       "CHIA",
	"orland park":       "CHIA",
	"tinley park":       "CHIA",
	"oak lawn":          "CHIA",
	"berwyn":            "CHIA",
	"mount prospect":    "CHIA",
	"normal":            "CHIA",
	"wheaton":           "CHIA",
	"hoffman estates":   "CHIA",
	"oak park":          "CHIA",
	"downers grove":     "CHIA",
	"elmhurst":          "CHIA",
	"dekalb":            "CHIA",
	"glenview":          "CHIA",
	"lombard":           "CHIA",
	"belleville":        "CHIA",
	"moline":            "CHIA",
	"east st louis":     "STLA",
	"rock island":       "CHIA",
	"galesburg":         "CHIA",
	"quincy":            "CHIA",
	"danville":          "CHIA",
	"charleston":        "CHIA",
	"mattoon":           "CHIA",
	"effingham":         "CHIA",
	"carbondale":        "CHIA",
	"marion":            "CHIA",

	// International cities
	"paris":            "PARI",
	"london":           "LONA",
	"tokyo":            "TYOA",
	"beijing":          "PEKA",
	"shanghai":         "SHAA",
	"mumbai":           "BOMA",
	"delhi":            "DELA",
	"sydney":           "SYDA",
	"melbourne":        "MELA",
	"toronto":          "YTOA",
	"vancouver":        "YVRA",
	"montreal":         "YMQA",
	"mexico city":      "MEXA",
	"sao paulo":        "GRUA",
	"rio de janeiro":   "RIOA",
	"buenos aires":     "BUEA",
	"madrid":           "MADA",
	"barcelona":        "BCNA",
	"rome":             "ROMA",
	"milan":            "MILA",
	"berlin":           "BERA",
	"munich":           "MUNCH",
	"frankfurt":        "FRAA",
	"amsterdam":        "AMSA",
	"brussels":         "BRUA",
	"zurich":           "ZRHA",
	"vienna":           "VIEA",
	"prague":           "PRGA",
	"budapest":         "BUDA",
	"warsaw":           "WARA",
	"moscow":           "MOWA",
	"st petersburg":    "LEDA",
	"istanbul":         "ISTA",
	"dubai":            "DXBA",
	"abu dhabi":        "AUHA",
	"doha":             "DOHA",
	"riyadh":           "RUHA",
	"jeddah":           "JEDA",
	"cairo":            "CAA",
	"nairobi":          "NBRA",
	"lagos":            "LOSA",
	"johannesburg":     "JNBSA",
	"cape town":        "CPTA",
	"seoul":            "SELA",
	"osaka":            "OSAA",
	"kyoto":            "OSAA",
	"hong kong":        "HKGA",
	"singapore":        "SINA",
	"bangkok":          "BKKA",
	"manila":           "MNLA",
	"jakarta":          "CGKA",
	"kuala lumpur":     "KULA",
	"ho chi minh city": "SGN",
	"hanoi":            "HANA",
	"phnom penh":       "PNHA",
	"vientiane":        "VTE",
	"yangon":           "RGN",
	"dhaka":            "DACA",

	// Indian cities and suburbs
	"kolkata":       "CCUA",
	"chennai":       "MAAA",
	"bangalore":     "BLRA",
	"hyderabad":     "HYDA",
	"pune":          "PNQA",
	"ahmedabad":     "AMDA",
	"surat":         "STVA",
	"jaipur":        "JAI",
	"lucknow":       "LKO",
	"kanpur":        "KNU",
	"nagpur":        "NAG",
	"indore":        "IDR",
	"thane":         "BOMA",
	"bhopal":        "BHO",
	"visakhapatnam": "VTZ",
	"patna":         "PAT",
	"vadodara":      "BDQ",
	"ghaziabad":     "DELA",
	"ludhiana":      "LUH",
	"agra":          "AGR",
	"nashik":        "ISK",
	"faridabad":     "DELA",
	"meerut":        "DELA",
	"rajkot":        "RAJ",
	"kalyan":        "BOMA",
	"vasai":         "BOMA",
	"vashi":         "BOMA",
	"aurangabad":    "IXU",
	"dombivli":      "BOMA",
	"ahmednagar":    "BOMA",
	"solapur":       "SSE",
	"bhiwandi":      "BOMA",
	"srinagar":      "SXR",
	"guwahati":      "GAU",
	"chandigarh":    "IXC",
	"amritsar":      "ATQ",
	"varanasi":      "VNS",
	"allahabad":     "IXD",
	"ranchi":        "IXR",
	"howrah":        "CCUA",
	"coimbatore":    "CJB",
	"jabalpur":      "JLR",
	"gwalior":       "GWL",
	"vijayawada":    "VGA",
	"jodhpur":       "JDH",
	"madurai":       "IXM",
	"raipur":        "RPR",
	"kota":          "KTU",
}
