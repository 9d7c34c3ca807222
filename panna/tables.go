package panna

// Reference charts for the pana (panel) betting schemes. All tables are fixed
// data initialised once at load; nothing in this package ever writes to them,
// so they are safe for concurrent readers.
//
// A pana is written with its digits in ascending order where 0 counts as the
// largest digit, which is why entries like "290", "550" and "000" are legal.

const (
	// NumColumns is the count of chart columns, keyed 1..10 by digit sum.
	NumColumns = 10
	// ColumnSize is the total entries per MainChart column.
	ColumnSize = 22
	// SPSize is the number of single-pana entries at the head of each column.
	// Entries [SPSize:ColumnSize) are the double panas.
	SPSize = 12
)

// MainChart holds the ten columns of 22 panas each. Positions [0,12) of a
// column are its SP (single pana) numbers, positions [12,22) its DP (double
// pana) numbers. The contents are the authored reference data, reproduced
// verbatim: "000" is a chart entry, and "559" appears both in column 9's DP
// block and column 10's SP block.
var MainChart = [][]string{
	{"128", "137", "146", "236", "245", "290", "380", "470", "489", "560", "579", "678", "100", "119", "155", "227", "335", "344", "399", "588", "669", "777"},
	{"129", "138", "147", "156", "237", "246", "345", "390", "480", "570", "589", "679", "110", "200", "228", "255", "336", "499", "660", "688", "778", "444"},
	{"120", "139", "148", "157", "238", "247", "256", "346", "490", "580", "670", "689", "166", "229", "300", "337", "355", "445", "599", "779", "788", "111"},
	{"130", "149", "158", "167", "239", "248", "257", "347", "356", "590", "680", "789", "112", "220", "266", "338", "400", "446", "455", "699", "770", "888"},
	{"140", "159", "168", "230", "249", "258", "267", "348", "357", "456", "690", "780", "113", "122", "177", "339", "366", "447", "500", "799", "889", "555"},
	{"123", "150", "169", "178", "240", "259", "268", "349", "358", "367", "457", "790", "114", "277", "330", "448", "466", "556", "600", "880", "899", "222"},
	{"124", "160", "179", "250", "269", "278", "340", "359", "368", "458", "467", "890", "115", "133", "188", "223", "377", "449", "557", "566", "700", "999"},
	{"125", "134", "170", "189", "260", "279", "350", "369", "378", "459", "468", "567", "116", "224", "233", "288", "440", "477", "558", "800", "990", "666"},
	{"126", "135", "180", "234", "270", "289", "360", "379", "450", "469", "478", "568", "117", "144", "199", "225", "388", "559", "577", "667", "900", "333"},
	{"127", "136", "145", "190", "235", "280", "370", "389", "460", "479", "559", "578", "118", "226", "244", "299", "334", "488", "550", "668", "677", "000"},
}

// JodiVagarChart holds the ten Jodi Vagar columns of 12 numbers. The first
// five entries of a column are its single panas, the remaining seven its
// doubles; the jodi type (5/7/12) selects between those blocks.
var JodiVagarChart = [][]string{
	{"137", "146", "470", "579", "380", "119", "155", "227", "335", "399", "588", "669"},
	{"147", "246", "480", "138", "570", "228", "255", "336", "499", "688", "660", "200"},
	{"139", "148", "157", "247", "580", "166", "229", "300", "337", "377", "599", "779"},
	{"149", "248", "680", "257", "158", "220", "266", "338", "446", "699", "770", "400"},
	{"159", "258", "357", "168", "249", "113", "177", "339", "366", "447", "799", "500"},
	{"169", "268", "240", "358", "259", "114", "277", "330", "448", "466", "880", "600"},
	{"179", "359", "250", "269", "368", "115", "133", "188", "377", "449", "557", "700"},
	{"279", "260", "350", "369", "468", "116", "224", "288", "440", "477", "558", "800"},
	{"379", "270", "469", "450", "360", "117", "144", "199", "225", "388", "559", "577"},
	{"136", "280", "460", "370", "479", "118", "226", "244", "299", "488", "550", "668"},
}

// DadarNumbers is the fixed Dadar selection; a Dadar bet always covers all
// ten numbers.
var DadarNumbers = []string{"678", "345", "120", "789", "456", "123", "890", "567", "234", "190"}

// EkiNumbers and BekiNumbers are the fixed odd-digit and even-digit pana
// selections.
var (
	EkiNumbers  = []string{"137", "135", "139", "157", "159", "179", "357", "359", "379", "579"}
	BekiNumbers = []string{"246", "248", "240", "268", "260", "280", "468", "460", "480", "680"}
)

// AbrCutChartSize is the entries per ABR-Cut column.
const AbrCutChartSize = 9

// AbrCutChart holds the ten ABR-Cut columns of 9 numbers: the cut panas
// (every digit shifted by five) of the first nine SP entries of the matching
// MainChart column.
var AbrCutChart = [][]string{
	{"367", "268", "169", "178", "790", "457", "358", "259", "349"},
	{"467", "368", "269", "160", "278", "179", "890", "458", "359"},
	{"567", "468", "369", "260", "378", "279", "170", "189", "459"},
	{"568", "469", "360", "126", "478", "379", "270", "289", "180"},
	{"569", "460", "136", "578", "479", "370", "127", "389", "280"},
	{"678", "560", "146", "236", "579", "470", "137", "489", "380"},
	{"679", "156", "246", "570", "147", "237", "589", "480", "138"},
	{"670", "689", "256", "346", "157", "247", "580", "148", "238"},
	{"167", "680", "356", "789", "257", "347", "158", "248", "590"},
	{"267", "168", "690", "456", "780", "357", "258", "348", "159"},
}

// JodiPanelChartSize is the entries per Jodi Panel column; the panel type
// (6/7/9) selects a prefix of the column.
const JodiPanelChartSize = 9

// JodiPanelChart holds the ten Jodi Panel columns: the first nine entries of
// the matching Jodi Vagar column.
var JodiPanelChart = [][]string{
	{"137", "146", "470", "579", "380", "119", "155", "227", "335"},
	{"147", "246", "480", "138", "570", "228", "255", "336", "499"},
	{"139", "148", "157", "247", "580", "166", "229", "300", "337"},
	{"149", "248", "680", "257", "158", "220", "266", "338", "446"},
	{"159", "258", "357", "168", "249", "113", "177", "339", "366"},
	{"169", "268", "240", "358", "259", "114", "277", "330", "448"},
	{"179", "359", "250", "269", "368", "115", "133", "188", "377"},
	{"279", "260", "350", "369", "468", "116", "224", "288", "440"},
	{"379", "270", "469", "450", "360", "117", "144", "199", "225"},
	{"136", "280", "460", "370", "479", "118", "226", "244", "299"},
}
