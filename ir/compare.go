package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntType, LongType, FloatType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case EmptyType:
		return 0
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Empty < Bool < numbers < String < Array < Object. The three
// numeric variants share a rank and compare by value.
func rank(t Type) int {
	switch t {
	case EmptyType:
		return 0
	case BoolType:
		return 1
	case IntType, LongType, FloatType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	return cmp.Compare(numberValue(a), numberValue(b))
}

func numberValue(n *Node) float64 {
	switch n.Type {
	case IntType:
		return float64(n.Int)
	case LongType:
		return float64(n.Long)
	default:
		return n.Float
	}
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// compareObjects compares by sorted key, then per-key value. Entry
// order is not significant for objects.
func compareObjects(a, b *Node) int {
	keysA := sortedKeys(a)
	keysB := sortedKeys(b)
	minLen := min(len(keysA), len(keysB))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(keysA[i], keysB[i]); c != 0 {
			return c
		}
		if c := Compare(Get(a, keysA[i]), Get(b, keysB[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(keysA), len(keysB))
}

func sortedKeys(y *Node) []string {
	keys := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		keys[i] = f.String
	}
	slices.Sort(keys)
	return keys
}
