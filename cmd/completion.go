package cmd

import (
	"flag"

	"github.com/etnz/fxdash/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// currencies are suggested as pair arguments.
var currencies = predict.Set{"EUR", "USD", "GBP", "JPY", "CHF", "AUD", "CAD", "NZD", "SEK", "NOK", "CNY", "HKD", "SGD"}

// flagPredictors suggest values of the flags that have a closed set of them.
var flagPredictors = map[string]complete.Predictor{
	"style":   predict.Set{"balanced", "technical", "fundamental", "risk", "brief"},
	"depth":   predict.Set{"standard", "detailed", "brief"},
	"sources": predict.Set{"interest_rates", "central_banks", "economic", "technical"},
	"config":  predict.Files("*.toml"),
	"prefs":   predict.Files("*.json"),
}

// Completion returns the shell completion of fxd, with the flags declared by
// every subcommand.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictFlags(flag.CommandLine),
	}
	for _, cmds := range Commands {
		for _, c := range cmds {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			sub := &complete.Command{Flags: predictFlags(fs), Args: currencies}
			if c.Name() == "topic" {
				topics, _ := docs.GetAllTopics()
				sub.Args = predict.Set(topics)
			}
			root.Sub[c.Name()] = sub
		}
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{Args: predict.Set(commandNames())}
	}
	return root
}

func predictFlags(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		p, ok := flagPredictors[f.Name]
		if !ok {
			p = predict.Something
			if b, isBool := f.Value.(interface{ IsBoolFlag() bool }); isBool && b.IsBoolFlag() {
				p = predict.Nothing
			}
		}
		flags[f.Name] = p
	})
	return flags
}

func commandNames() []string {
	var names []string
	for _, cmds := range Commands {
		for _, c := range cmds {
			names = append(names, c.Name())
		}
	}
	return names
}
