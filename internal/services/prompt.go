package services

import (
	"strings"

	"github.com/GregMSThompson/bank-closures/internal/dto"
	"github.com/GregMSThompson/bank-closures/internal/models"
)

// preferredBanks steers the model toward consistent bank names. The model
// may still return banks outside this list.
var preferredBanks = []string{
	"1st United Bank",
	"Abington Bank",
	"Alliant",
	"All America Bank/Redneck Bank",
	"Ally",
	"Amalgamated Bank",
	"Amboy",
	"Andigo Credit Union",
	"Associated Bank",
	"Astoria Bank",
	"Bank of America",
	"BB&T",
	"Bank Of The West",
	"Bank & Trust",
	"BBVA",
	"Blue Hills Bank",
	"Bluevine",
	"BMO Harris",
	"BMT (Bryn Mawr Trust)",
	"Bridgeview Bank",
	"Cambridge Savings Bank",
	"CampusUSA",
	"Capital Bank",
	"Capital One 360",
	"Chase",
	"Chime",
	"Christian Community Credit Union",
	"CIT Bank",
	"Citi",
	"Citadel Credit Union",
	"Citizens Bank",
	"City National Bank (WV)",
	"Columbia Bank (NJ)",
	"Columbia Bank (WA, OR, ID)",
	"Comerica",
	"Credit Union West",
	"Dollar Bank",
	"Discover",
	"Easthampton Savings Bank (BankESB)",
	"Elements",
	"FCB South County Bank",
	"Fidelity Bank",
	"Fifth Third",
	"First America Bank",
	"FirstBank",
	"First Citizens Bank",
	"First Federal Bank",
	"First Horizon",
	"First Merchants Bank",
	"First National Bank",
	"First National Bank of PA",
	"First Niagara",
	"First Tech Federal Credit Union",
	"First Tennessee",
	"Five Star Bank",
	"Flushing Bank",
	"Fulton Bank",
	"Gesa Credit Union",
	"Hancock Whitney",
	"Hanmi Bank",
	"Home Savings Bank",
	"HomeStreet",
	"HSBC",
	"Huntington",
	"Iberia Bank",
	"Incredible Bank",
	"Investors Bank",
	"KeyBank",
	"KeyPoint",
	"Lakeland Bank",
	"LegacyTexas Bank",
	"LevelOne Bank",
	"Liberty Bank",
	"Lili",
	"Marcus By Goldman Sachs",
	"Maxx By Cedar Rapids",
	"MECU Credit Union",
	"Memory Bank",
	"MidFirst Bank",
	"Midland States Bank",
	"Monifi",
	"Mountain America Credit Union",
	"M&T",
	"Nationwide",
	"Navy Federal Credit Union (NFCU)",
	"NBKC",
	"Northpointe",
	"Northshore Credit Union",
	"Northwest",
	"NYCB Family Of Banks",
	"Ocean First",
	"Old National Bank",
	"Orion Federal Credit Union",
	"PeoplesBank",
	"Pinnacle Bank",
	"Pinnacle Bank (Texas)",
	"PNC",
	"Popular Community",
	"Provident Bank",
	"Quontic",
	"Quorum FCU",
	"Radius Bank",
	"Regions Bank",
	"Republic Bank",
	"Ridgewood Savings Bank",
	"Rockland Trust Bank",
	"Salem Five",
	"Sandy Spring Bank",
	"Santander",
	"Seacoast Bank",
	"SEFCU",
	"SFGI",
	"SkyOne Federal Credit Union",
	"South Shore Bank",
	"S&T Bank",
	"Suffolk Credit Union",
	"SunTrust",
	"Synovus",
	"Talmer Bank",
	"TCF Bank",
	"Tech CU",
	"TD Bank",
	"TIAA Direct",
	"Truist",
	"UFB Direct",
	"Unify",
	"Union Bank",
	"Union Bank & Trust",
	"United Bank",
	"USAA",
	"U.S Bank",
	"Valley National Bank",
	"VantageWest",
	"Varo Money",
	"Verity Credit Union",
	"Webster Bank",
	"Wells Fargo",
	"Westfield Bank (MA)",
	"Wings Credit Union",
	"Wintrust Bank",
}

const extractionSystemPrompt = `You read comments about closing bank accounts and list every account closure attempt described in the comment.
- A comment may describe zero closure attempts.
- If a comment is neutrally worded, assume a positive result (a successful closure).
- method must be one of: chat, phone, in-branch, 0-balance, secure-message.`

func extractionUserPrompt(c models.Comment) string {
	var b strings.Builder
	b.WriteString("Here's a list of banks you should prefer, but are not required to choose from:\n\n")
	for _, bank := range preferredBanks {
		b.WriteString(bank)
		b.WriteByte('\n')
	}
	b.WriteString("\nComment:'")
	b.WriteString(c.Text)
	b.WriteString("'")
	return b.String()
}

func extractionSchema() *dto.VertexSchema {
	return &dto.VertexSchema{
		Type: "object",
		Properties: map[string]*dto.VertexSchema{
			"closure_attempts": {
				Type: "array",
				Items: &dto.VertexSchema{
					Type: "object",
					Properties: map[string]*dto.VertexSchema{
						"success":   {Type: "boolean"},
						"bank_name": {Type: "string"},
						"method":    {Type: "string", Enum: models.ClosureMethods},
					},
					Required: []string{"success", "bank_name", "method"},
				},
			},
		},
		Required: []string{"closure_attempts"},
	}
}
