package polynomial_test

import (
	"errors"
	"fmt"

	"github.com/polywork/realpoly/polynomial"
)

func Example() {

	// p(x) = x + 1
	p, err := polynomial.NewPolynomial(1, []float64{1, 1})
	if err != nil {
		panic(err)
	}

	// q(x) = x^2 + x + 1
	q, err := polynomial.NewPolynomial(2, []float64{1, 1, 1})
	if err != nil {
		panic(err)
	}

	sum, err := p.Add(q)
	if err != nil {
		panic(err)
	}

	prod, err := p.Multiply(q)
	if err != nil {
		panic(err)
	}

	fmt.Println(sum)
	fmt.Println(prod)
	fmt.Println(prod.Evaluate(2))
	fmt.Println(q.MultiplyByConstant(-2).AddConstant(1))

	// Output:
	// x^2 + 2x + 2
	// x^3 + 2x^2 + 2x + 1
	// 21
	// -2x^2 - 2x - 1
}

func ExamplePolynomial_Add_nil() {

	p, err := polynomial.NewPolynomial(1, []float64{2, 3})
	if err != nil {
		panic(err)
	}

	_, err = p.Add(nil)
	fmt.Println(errors.Is(err, polynomial.ErrNullArgument))

	// Output:
	// true
}

func ExampleNewPolynomial_invalid() {

	_, err := polynomial.NewPolynomial(2, []float64{1, 2})
	fmt.Println(errors.Is(err, polynomial.ErrInvalidArgument))
	fmt.Println(err)

	// Output:
	// true
	// cannot NewPolynomial: len(coeffs)=2 must be equal to degree+1=3: invalid argument
}
