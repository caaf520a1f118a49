package main

import (
	"fmt"
	"io"

	"minirel/internal/domain"
	"minirel/internal/relation"
)

// buildBank constructs and populates the four base relations of the
// sample bank database.
func buildBank() (branch, customer, deposit, loan *relation.Table, err error) {
	branch, err = relation.New("branch", "bname assets bcity", "String Double String", "bname")
	if err != nil {
		return nil, nil, nil, nil, err
	}
	customer, err = relation.New("customer", "cname street ccity", "String String String", "cname")
	if err != nil {
		return nil, nil, nil, nil, err
	}
	deposit, err = relation.New("deposit", "bname accno cname balance", "String Integer String Double", "accno")
	if err != nil {
		return nil, nil, nil, nil, err
	}
	loan, err = relation.New("loan", "bname loanno cname amount", "String Integer String Double", "loanno")
	if err != nil {
		return nil, nil, nil, nil, err
	}

	branch.Insert(domain.NewString("Main"), domain.NewFloat64(15000000.0), domain.NewString("Athens")).
		Insert(domain.NewString("Lake"), domain.NewFloat64(20000000.0), domain.NewString("Gainesville")).
		Insert(domain.NewString("Downtown"), domain.NewFloat64(10000000.0), domain.NewString("Winder")).
		Insert(domain.NewString("Alps"), domain.NewFloat64(11000000.0), domain.NewString("Athens"))

	customer.Insert(domain.NewString("Peter"), domain.NewString("Maple St"), domain.NewString("Athens")).
		Insert(domain.NewString("Paul"), domain.NewString("Oak St"), domain.NewString("Athens")).
		Insert(domain.NewString("Mary"), domain.NewString("Elm St"), domain.NewString("Winder")).
		Insert(domain.NewString("Joe"), domain.NewString("Pine St"), domain.NewString("Athens"))

	deposit.Insert(domain.NewString("Downtown"), domain.NewInt32(901), domain.NewString("Peter"), domain.NewFloat64(1000.0)).
		Insert(domain.NewString("Main"), domain.NewInt32(902), domain.NewString("Paul"), domain.NewFloat64(2000.0)).
		Insert(domain.NewString("Alps"), domain.NewInt32(903), domain.NewString("Paul"), domain.NewFloat64(3000.0)).
		Insert(domain.NewString("Lake"), domain.NewInt32(904), domain.NewString("Paul"), domain.NewFloat64(1000.0)).
		Insert(domain.NewString("Main"), domain.NewInt32(905), domain.NewString("Mary"), domain.NewFloat64(1000.0)).
		Insert(domain.NewString("Alps"), domain.NewInt32(906), domain.NewString("Mary"), domain.NewFloat64(2000.0)).
		Insert(domain.NewString("Lake"), domain.NewInt32(907), domain.NewString("Joe"), domain.NewFloat64(1500.0))

	loan.Insert(domain.NewString("Lake"), domain.NewInt32(1001), domain.NewString("Peter"), domain.NewFloat64(1000.0)).
		Insert(domain.NewString("Alps"), domain.NewInt32(1002), domain.NewString("Peter"), domain.NewFloat64(2000.0)).
		Insert(domain.NewString("Main"), domain.NewInt32(1003), domain.NewString("Paul"), domain.NewFloat64(1000.0)).
		Insert(domain.NewString("Alps"), domain.NewInt32(1004), domain.NewString("Paul"), domain.NewFloat64(2000.0)).
		Insert(domain.NewString("Main"), domain.NewInt32(1005), domain.NewString("Mary"), domain.NewFloat64(1500.0)).
		Insert(domain.NewString("Downtown"), domain.NewInt32(1006), domain.NewString("Mary"), domain.NewFloat64(2000.0))

	return branch, customer, deposit, loan, nil
}

// runDemo issues the reference queries against the bank database and
// renders every result to w. A failed query has already been reported
// through diagnostics and is skipped.
func runDemo(w io.Writer) error {
	_, customer, deposit, loan, err := buildBank()
	if err != nil {
		return fmt.Errorf("building bank database: %w", err)
	}

	bnameCol, _ := deposit.Schema().Col("bname")
	alps := domain.NewString("Alps")

	results := []*relation.Table{
		deposit.Project("bname cname"),
		deposit.Select(func(t relation.Tuple) bool { return t[bnameCol].Equals(alps) }),
		deposit.SelectWhere("bname == 'Alps'"),
		deposit.Union(loan),
		deposit.Minus(loan),
		deposit.EquiJoin("cname", "cname", customer),
		deposit.ThetaJoin("cname == cname", customer),
		deposit.NaturalJoin(customer),
	}
	for _, res := range results {
		if res == nil {
			continue
		}
		relation.Render(w, res)
	}
	return nil
}
