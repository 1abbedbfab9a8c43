package agent

import "github.com/etnz/fxdash"

// DemoAnalysis is the neutral analysis shown when no AI service is
// available.
func DemoAnalysis() fxdash.Analysis {
	return fxdash.Analysis{
		ShortTerm: fxdash.Outlook{
			Trend:   fxdash.Neutral,
			Summary: "Market conditions suggest a consolidation phase in the short term. Watch for upcoming economic data releases.",
			Details: "The currency pair is currently trading within a defined range. Key factors to monitor include central bank communications, employment data, and inflation figures. The interest rate differential provides some support, but market sentiment remains cautious ahead of major economic releases.",
			Sources: []fxdash.SourceLink{{Name: "Market Analysis (Demo)", URL: "https://example.com"}},
		},
		LongTerm: fxdash.Outlook{
			Trend:   fxdash.Neutral,
			Summary: "Medium-term outlook depends on monetary policy divergence between the two central banks.",
			Details: "Over the next 1-3 months, the direction will likely be determined by central bank policy decisions and economic growth differentials. Current interest rate spreads suggest potential for carry trade flows, but geopolitical factors and global risk appetite will also play significant roles in determining the trend.",
			Sources: []fxdash.SourceLink{{Name: "Economic Outlook (Demo)", URL: "https://example.com"}},
		},
		Origin: "demo",
	}
}
