package searcher

import "fmt"

// Strategy selects the frontier removal policy for a whole run.
type Strategy int

const (
	BreadthFirst  Strategy = iota + 1 // FIFO, ignores evaluation
	Greedy                            // minimum weighted heuristic
	WeightedAStar                     // minimum weighted heuristic + cost
)

var strategyNames = map[Strategy]string{
	BreadthFirst:  "breadth-first",
	Greedy:        "greedy",
	WeightedAStar: "weighted-a*",
}

// Strategies lists the recognized strategies in declaration order.
func Strategies() []Strategy {
	return []Strategy{BreadthFirst, Greedy, WeightedAStar}
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

// ParseStrategy maps an identifier such as "weighted-a*" to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for strategy, strategyName := range strategyNames {
		if strategyName == name {
			return strategy, nil
		}
	}
	return 0, &ConfigurationError{Strategy: name}
}
