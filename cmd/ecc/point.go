package main

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecc/internal/config"
	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/field"
	"github.com/smallyu/go-ecc/internal/crypto/rational"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// pointRunner hides the coordinate type of the selected preset.
type pointRunner interface {
	add(w io.Writer, args []string) error
	mul(w io.Writer, k *big.Int, args []string) error
	check(w io.Writer, args []string) error
	table(ctx context.Context, w io.Writer, n int64, args []string) error
}

type curveRunner[T ecc.Coordinate[T]] struct {
	preset config.Preset
	curve  *curves.Curve[T]
	parse  func(c *curves.Curve[T], x, y string) (*curves.Point[T], error)
}

func (r *curveRunner[T]) point(args []string) (*curves.Point[T], error) {
	switch len(args) {
	case 1:
		if args[0] != "inf" {
			return nil, ecc.NewOpError("ecc.point", ecc.ErrInvalidParameters, "expected X Y or inf")
		}
		return r.curve.Infinity(), nil
	case 2:
		return r.parse(r.curve, args[0], args[1])
	}
	return nil, ecc.NewOpError("ecc.point", ecc.ErrInvalidParameters, "expected X Y or inf")
}

// points splits args into points, each given as "X Y" or "inf".
func (r *curveRunner[T]) points(args []string) ([]*curves.Point[T], error) {
	var out []*curves.Point[T]
	for i := 0; i < len(args); {
		n := 2
		if args[i] == "inf" {
			n = 1
		}
		if i+n > len(args) {
			return nil, ecc.NewOpError("ecc.point", ecc.ErrInvalidParameters, "dangling coordinate %s", args[i])
		}
		p, err := r.point(args[i : i+n])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
		i += n
	}
	return out, nil
}

// generator returns the point given in args, or the preset generator when
// args is empty.
func (r *curveRunner[T]) generator(args []string) (*curves.Point[T], error) {
	if len(args) > 0 {
		return r.point(args)
	}
	if !r.preset.HasGenerator() {
		return nil, ecc.NewOpError("ecc.point", ecc.ErrInvalidParameters, "preset %s has no generator", r.preset.Name)
	}
	return r.parse(r.curve, r.preset.Gx, r.preset.Gy)
}

func (r *curveRunner[T]) add(w io.Writer, args []string) error {
	ps, err := r.points(args)
	if err != nil {
		return err
	}
	if len(ps) != 2 {
		return ecc.NewOpError("ecc.point", ecc.ErrInvalidParameters, "add takes two points, got %d", len(ps))
	}
	sum, err := ps[0].Add(ps[1])
	if err != nil {
		return errors.Wrapf(err, "%s + %s", ps[0], ps[1])
	}
	fmt.Fprintln(w, sum)
	return nil
}

func (r *curveRunner[T]) mul(w io.Writer, k *big.Int, args []string) error {
	p, err := r.generator(args)
	if err != nil {
		return err
	}
	q, err := p.ScalarMul(k)
	if err != nil {
		return errors.Wrapf(err, "%s * %s", k, p)
	}
	fmt.Fprintln(w, q)
	return nil
}

func (r *curveRunner[T]) check(w io.Writer, args []string) error {
	if len(args) != 2 {
		return ecc.NewOpError("ecc.point", ecc.ErrInvalidParameters, "check takes X Y")
	}
	_, err := r.parse(r.curve, args[0], args[1])
	switch {
	case err == nil:
		fmt.Fprintf(w, "(%s, %s) is on %s\n", args[0], args[1], r.curve)
		return nil
	case errors.Is(err, ecc.ErrNotOnCurve):
		fmt.Fprintf(w, "(%s, %s) is not on %s\n", args[0], args[1], r.curve)
		return nil
	}
	return err
}

// table prints k*P for k = 1..n, computed concurrently.
func (r *curveRunner[T]) table(ctx context.Context, w io.Writer, n int64, args []string) error {
	p, err := r.generator(args)
	if err != nil {
		return err
	}
	jobs := make([]curves.ScalarMulJob[T], 0, n)
	for k := int64(1); k <= n; k++ {
		jobs = append(jobs, curves.ScalarMulJob[T]{Point: p, Scalar: big.NewInt(k)})
	}
	results, err := curves.ScalarMulBatch(ctx, jobs, 0)
	if err != nil {
		return err
	}
	for i, q := range results {
		fmt.Fprintf(w, "%d\t%s\n", i+1, q)
	}
	return nil
}

func (a *app) runner() (pointRunner, error) {
	p, err := a.conf.Preset(a.conf.Curve)
	if err != nil {
		return nil, err
	}
	if p.Modular() {
		c, err := p.FieldCurve()
		if err != nil {
			return nil, err
		}
		return &curveRunner[*field.Element]{preset: p, curve: c, parse: config.FieldPoint}, nil
	}
	c, err := p.RationalCurve()
	if err != nil {
		return nil, err
	}
	return &curveRunner[*rational.Rat]{preset: p, curve: c, parse: config.RationalPoint}, nil
}

func newPointCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "point",
		Short: "Group operations on the points of the --curve preset",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add X1 Y1 X2 Y2",
		Short: "add two points; either may be written as inf",
		Args:  cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.runner()
			if err != nil {
				return err
			}
			return r.add(cmd.OutOrStdout(), args)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "mul K [X Y]",
		Short: "multiply a point, by default the preset generator, by K",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := config.ParseInt(args[0])
			if err != nil {
				return err
			}
			r, err := a.runner()
			if err != nil {
				return err
			}
			return r.mul(cmd.OutOrStdout(), k, args[1:])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check X Y",
		Short: "report whether (X, Y) is on the curve",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.runner()
			if err != nil {
				return err
			}
			return r.check(cmd.OutOrStdout(), args)
		},
	})

	var count int64
	table := &cobra.Command{
		Use:   "table [X Y]",
		Short: "print the first multiples of a point",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return ecc.NewOpError("ecc.point", ecc.ErrInvalidParameters, "--count must be positive")
			}
			r, err := a.runner()
			if err != nil {
				return err
			}
			return r.table(cmd.Context(), cmd.OutOrStdout(), count, args)
		},
	}
	table.Flags().Int64VarP(&count, "count", "n", 10, "number of multiples")
	cmd.AddCommand(table)

	return cmd
}
