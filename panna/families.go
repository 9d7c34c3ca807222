package panna

// FamilyGroup is one Set Pana family: a fixed set of panas whose digits map
// onto each other under the cut-digit relation (d and d+5 share a class).
type FamilyGroup struct {
	Name    string
	Numbers []string
}

// FamilyGroups is the authored Set Pana reference data: 35 disjoint groups of
// up to eight panas. A Set Pana bet on any member covers the whole group.
// "999" belongs to no group.
var FamilyGroups = []FamilyGroup{
	{"G1", []string{"678", "123", "137", "268", "236", "178", "128", "367"}},
	{"G2", []string{"000", "500", "550", "555"}},
	{"G3", []string{"100", "150", "155", "556", "560", "600"}},
	{"G4", []string{"110", "115", "156", "160", "566", "660"}},
	{"G5", []string{"111", "116", "166", "666"}},
	{"G6", []string{"112", "117", "126", "167", "266", "667"}},
	{"G7", []string{"113", "118", "136", "168", "366", "668"}},
	{"G8", []string{"114", "119", "146", "169", "466", "669"}},
	{"G9", []string{"120", "125", "157", "170", "256", "260", "567", "670"}},
	{"G10", []string{"122", "127", "177", "226", "267", "677"}},
	{"G11", []string{"124", "129", "147", "179", "246", "269", "467", "679"}},
	{"G12", []string{"130", "135", "158", "180", "356", "360", "568", "680"}},
	{"G13", []string{"133", "138", "188", "336", "368", "688"}},
	{"G14", []string{"134", "139", "148", "189", "346", "369", "468", "689"}},
	{"G15", []string{"140", "145", "159", "190", "456", "460", "569", "690"}},
	{"G16", []string{"144", "149", "199", "446", "469", "699"}},
	{"G17", []string{"200", "250", "255", "557", "570", "700"}},
	{"G18", []string{"220", "225", "257", "270", "577", "770"}},
	{"G19", []string{"222", "227", "277", "777"}},
	{"G20", []string{"223", "228", "237", "278", "377", "778"}},
	{"G21", []string{"224", "229", "247", "279", "477", "779"}},
	{"G22", []string{"230", "235", "258", "280", "357", "370", "578", "780"}},
	{"G23", []string{"233", "238", "288", "337", "378", "788"}},
	{"G24", []string{"234", "239", "248", "289", "347", "379", "478", "789"}},
	{"G25", []string{"240", "245", "259", "290", "457", "470", "579", "790"}},
	{"G26", []string{"244", "249", "299", "447", "479", "799"}},
	{"G27", []string{"300", "350", "355", "558", "580", "800"}},
	{"G28", []string{"330", "335", "358", "380", "588", "880"}},
	{"G29", []string{"333", "338", "388", "888"}},
	{"G30", []string{"334", "339", "348", "389", "488", "889"}},
	{"G31", []string{"340", "345", "359", "390", "458", "480", "589", "890"}},
	{"G32", []string{"344", "349", "399", "448", "489", "899"}},
	{"G33", []string{"400", "450", "455", "559", "590", "900"}},
	{"G34", []string{"440", "445", "459", "490", "599", "990"}},
	{"G35", []string{"444", "449", "499"}},
}
