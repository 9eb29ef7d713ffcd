package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecc/internal/config"
	"github.com/smallyu/go-ecc/internal/crypto/field"
)

type binaryFieldOp func(a, b *field.Element) (*field.Element, error)

func newFieldCmd() *cobra.Command {
	var modulus string

	cmd := &cobra.Command{
		Use:   "field",
		Short: "Arithmetic in the prime field F_p",
	}
	cmd.PersistentFlags().StringVarP(&modulus, "modulus", "p", "", "prime modulus p (required)")
	_ = cmd.MarkPersistentFlagRequired("modulus")

	binary := map[string]binaryFieldOp{
		"add": (*field.Element).Add,
		"sub": (*field.Element).Sub,
		"mul": (*field.Element).Mul,
		"div": (*field.Element).Div,
	}
	for _, name := range []string{"add", "sub", "mul", "div"} {
		op := binary[name]
		cmd.AddCommand(&cobra.Command{
			Use:   name + " A B",
			Short: name + " two elements of F_p",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				f, err := parseField(modulus)
				if err != nil {
					return err
				}
				a, err := parseElement(f, args[0])
				if err != nil {
					return err
				}
				b, err := parseElement(f, args[1])
				if err != nil {
					return err
				}
				r, err := op(a, b)
				if err != nil {
					return errors.Wrapf(err, "%s %s %s", name, a, b)
				}
				fmt.Fprintln(cmd.OutOrStdout(), r)
				return nil
			},
		})
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "pow A K",
		Short: "raise A to the integer power K (negative K after --)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseField(modulus)
			if err != nil {
				return err
			}
			a, err := parseElement(f, args[0])
			if err != nil {
				return err
			}
			k, err := config.ParseInt(args[1])
			if err != nil {
				return err
			}
			r, err := a.Pow(k)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	})

	return cmd
}

func parseField(modulus string) (*field.Field, error) {
	p, err := config.ParseInt(modulus)
	if err != nil {
		return nil, err
	}
	return field.NewField(p)
}

func parseElement(f *field.Field, s string) (*field.Element, error) {
	v, err := config.ParseInt(s)
	if err != nil {
		return nil, err
	}
	return f.Element(v)
}
