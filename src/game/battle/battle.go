// Package battle computes exact combat odds for dice-duel rounds. The
// attacker rolls up to three dice and the defender up to two; the highest
// dice on each side are paired off and every lost comparison costs one
// troop, with the defender winning ties. All probabilities are exact
// rationals obtained by enumerating the full joint roll space, so the
// numbers carry no floating-point error no matter how they are combined
// downstream.
package battle

import (
	"fmt"
	"sort"

	"warband/src/numeric/rational"
)

const (
	dieFaces = 6

	MaxAttackDice = 3
	MaxDefendDice = 2
)

// Odds holds the exact chance of every casualty split for one round.
type Odds struct {
	attackDice int
	defendDice int

	// splits[k] is the probability that the attacker loses k troops and
	// the defender loses len(splits)-1-k.
	splits []rational.Rational
}

// RoundOdds enumerates every joint dice outcome for one round and returns
// the exact probability of each casualty split.
func RoundOdds(attackDice, defendDice int) (Odds, error) {
	if attackDice < 1 || attackDice > MaxAttackDice {
		return Odds{}, fmt.Errorf("battle: attacker rolls 1 to %d dice, got %d", MaxAttackDice, attackDice)
	}
	if defendDice < 1 || defendDice > MaxDefendDice {
		return Odds{}, fmt.Errorf("battle: defender rolls 1 to %d dice, got %d", MaxDefendDice, defendDice)
	}

	casualties := attackDice
	if defendDice < casualties {
		casualties = defendDice
	}

	total := int64(1)
	for i := 0; i < attackDice+defendDice; i++ {
		total *= dieFaces
	}

	counts := make([]int64, casualties+1)
	dice := make([]int, attackDice+defendDice)
	for i := range dice {
		dice[i] = 1
	}
	for {
		counts[attackerLosses(dice[:attackDice], dice[attackDice:])]++

		i := 0
		for ; i < len(dice); i++ {
			if dice[i] < dieFaces {
				dice[i]++
				break
			}
			dice[i] = 1
		}
		if i == len(dice) {
			break
		}
	}

	o := Odds{
		attackDice: attackDice,
		defendDice: defendDice,
		splits:     make([]rational.Rational, casualties+1),
	}
	for k, c := range counts {
		o.splits[k] = rational.RationalFromInt(c, total).Reduce()
	}
	return o, nil
}

// attackerLosses pairs the highest dice of each side and counts the
// comparisons the attacker loses. Ties go to the defender.
func attackerLosses(attack, defend []int) int {
	a := append([]int(nil), attack...)
	d := append([]int(nil), defend...)
	sort.Sort(sort.Reverse(sort.IntSlice(a)))
	sort.Sort(sort.Reverse(sort.IntSlice(d)))

	pairs := len(a)
	if len(d) < pairs {
		pairs = len(d)
	}
	losses := 0
	for i := 0; i < pairs; i++ {
		if d[i] >= a[i] {
			losses++
		}
	}
	return losses
}

// Casualties returns the number of troops lost per round, the smaller of
// the two dice counts.
func (o Odds) Casualties() int {
	return len(o.splits) - 1
}

// AttackerLoses returns the exact probability that the attacker loses k
// troops in the round, and the defender the rest.
func (o Odds) AttackerLoses(k int) rational.Rational {
	if k < 0 || k >= len(o.splits) {
		return rational.RationalFromInt(0, 1)
	}
	return o.splits[k]
}

// DefenderLoses returns the exact probability that the defender loses k
// troops in the round, and the attacker the rest.
func (o Odds) DefenderLoses(k int) rational.Rational {
	return o.AttackerLoses(o.Casualties() - k)
}

// ExpectedAttackerLoss returns the exact expected attacker casualties for
// the round.
func (o Odds) ExpectedAttackerLoss() rational.Rational {
	sum := rational.RationalFromInt(0, 1)
	for k, p := range o.splits {
		sum = sum.Add(p.Mul(rational.RationalFromInt(int64(k), 1)))
	}
	return sum
}

// ExpectedDefenderLoss returns the exact expected defender casualties for
// the round.
func (o Odds) ExpectedDefenderLoss() rational.Rational {
	sum := rational.RationalFromInt(0, 1)
	for k, p := range o.splits {
		sum = sum.Add(p.Mul(rational.RationalFromInt(int64(o.Casualties()-k), 1)))
	}
	return sum
}

// LossRatio returns expected attacker losses over expected defender losses.
// Both expectations are nonzero for every legal dice pairing, so the
// division is always defined.
func (o Odds) LossRatio() rational.Rational {
	return o.ExpectedAttackerLoss().Div(o.ExpectedDefenderLoss())
}

// AttackerFavored reports whether the attacker expects to lose strictly
// fewer troops than the defender this round.
func (o Odds) AttackerFavored() bool {
	return o.ExpectedAttackerLoss().Lt(o.ExpectedDefenderLoss())
}
