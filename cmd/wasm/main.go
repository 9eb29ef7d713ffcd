//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-ecc/internal/config"
	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/field"
)

func main() {
	c := make(chan struct{})

	fmt.Println("Go ECC WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECC", map[string]interface{}{
		"fieldOp":  js.FuncOf(FieldOp),
		"pointAdd": js.FuncOf(PointAdd),
	})

	<-c
}

// FieldOp applies a field operation.
// Arguments:
// 0: operation ("add", "sub", "mul", "div", "pow")
// 1: a (decimal or 0x string)
// 2: b, or the exponent for pow
// 3: modulus p
// Returns:
// the result as a decimal string, or "error: ..."
func FieldOp(this js.Value, args []js.Value) interface{} {
	if len(args) != 4 {
		return "error: expected 4 arguments (op, a, b, modulus)"
	}

	p, err := config.ParseInt(args[3].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	f, err := field.NewField(p)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	a, err := element(f, args[1].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	op := args[0].String()
	if op == "pow" {
		k, err := config.ParseInt(args[2].String())
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		r, err := a.Pow(k)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		return r.BigInt().String()
	}

	b, err := element(f, args[2].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	var r *field.Element
	switch op {
	case "add":
		r, err = a.Add(b)
	case "sub":
		r, err = a.Sub(b)
	case "mul":
		r, err = a.Mul(b)
	case "div":
		r, err = a.Div(b)
	default:
		return fmt.Sprintf("error: unknown operation %q", op)
	}
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return r.BigInt().String()
}

// PointAdd adds two points of a modular curve preset.
// Arguments:
// 0: preset name ("book223", "secp256k1", ...)
// 1: JSON string {"x1": "...", "y1": "...", "x2": "...", "y2": "..."};
//    an x of "inf" selects the point at infinity
// Returns:
// JSON string {"x": "...", "y": "..."} or {"infinity": true}, or "error: ..."
func PointAdd(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (preset, jsonPoints)"
	}

	type pointsInput struct {
		X1 string `json:"x1"`
		Y1 string `json:"y1"`
		X2 string `json:"x2"`
		Y2 string `json:"y2"`
	}
	var input pointsInput
	if err := json.Unmarshal([]byte(args[1].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	conf, err := config.Load(config.New(), "")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	preset, err := conf.Preset(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	c, err := preset.FieldCurve()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	p1, err := config.FieldPoint(c, input.X1, input.Y1)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	p2, err := config.FieldPoint(c, input.X2, input.Y2)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	sum, err := p1.Add(p2)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return marshalPoint(sum)
}

func element(f *field.Field, s string) (*field.Element, error) {
	v, err := config.ParseInt(s)
	if err != nil {
		return nil, err
	}
	return f.Element(v)
}

// marshalPoint encodes coordinates as decimal strings; JS numbers would lose
// precision.
func marshalPoint(p *curves.Point[*field.Element]) string {
	var out map[string]interface{}
	if x, y, ok := p.Coordinates(); ok {
		out = map[string]interface{}{"x": x.BigInt().String(), "y": y.BigInt().String()}
	} else {
		out = map[string]interface{}{"infinity": true}
	}
	b, _ := json.Marshal(out)
	return string(b)
}
