package polynomial

import (
	"strconv"
	"strings"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Polynomial represents a polynomial f(x) = a_0 + a_1*x + ... + a_t*x^t
// over a coordinate ring.
type Polynomial[T ecc.Coordinate[T]] struct {
	Coefficients []T
}

// New returns the polynomial with the given coefficients, constant term first.
func New[T ecc.Coordinate[T]](coefficients ...T) (*Polynomial[T], error) {
	if len(coefficients) == 0 {
		return nil, ecc.NewOpError("polynomial.New", ecc.ErrInvalidParameters, "no coefficients")
	}
	coeffs := make([]T, len(coefficients))
	copy(coeffs, coefficients)
	return &Polynomial[T]{Coefficients: coeffs}, nil
}

// Degree returns t, the index of the highest coefficient.
func (p *Polynomial[T]) Degree() int {
	return len(p.Coefficients) - 1
}

// Evaluate calculates f(x) in the coefficients' ring.
func (p *Polynomial[T]) Evaluate(x T) (T, error) {
	// Horner's method
	// result = a_t
	// for i = t-1 down to 0:
	//   result = result * x + a_i
	degree := p.Degree()
	result := p.Coefficients[degree]

	var err error
	for i := degree - 1; i >= 0; i-- {
		result, err = result.Mul(x)
		if err != nil {
			return result, err
		}
		result, err = result.Add(p.Coefficients[i])
		if err != nil {
			return result, err
		}
	}

	return result, nil
}

func (p *Polynomial[T]) String() string {
	terms := make([]string, 0, len(p.Coefficients))
	for i, c := range p.Coefficients {
		switch i {
		case 0:
			terms = append(terms, c.String())
		case 1:
			terms = append(terms, c.String()+"*x")
		default:
			terms = append(terms, c.String()+"*x^"+strconv.Itoa(i))
		}
	}
	return strings.Join(terms, " + ")
}
