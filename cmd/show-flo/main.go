// show-flo shows the representations of 8 bit floats, mostly for debugging
// conversions etc.
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/d4l3k/go-bfloat16"
	"github.com/olekukonko/tablewriter"

	"github.com/pfcm/minifloat/flo"
)

// CLI is the show-flo command line.
type CLI struct {
	Ops  string   `help:"Comma separated list of operations to show when given two numbers. Available operations are: neg, abs, add, sub, mul, div, fma. Defaults to all operations."`
	All  bool     `short:"a" help:"Show all 256 encodings instead of reading numbers."`
	Nums []string `arg:"" optional:"" name:"num" help:"Bit patterns as Go integer literals, e.g. 0x38, 0b00111000 or -72."`
}

var opKeys = []string{"neg", "abs", "add", "sub", "mul", "div", "fma"}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("show-flo"),
		kong.Description(help),
	)
	ctx.FatalIfErrorf(run(&cli, os.Stdout))
}

func run(cli *CLI, w io.Writer) error {
	if cli.All {
		if len(cli.Nums) != 0 {
			return errors.New("--all does not take any numbers")
		}
		all := make([]flo.E4M3, 256)
		for i := range all {
			all[i] = flo.E4M3(i)
		}
		showConversions(w, all...)
		return nil
	}

	if n := len(cli.Nums); n < 1 || n > 2 {
		return fmt.Errorf("need exactly one or two numbers, got %d", n)
	}
	ops, err := parseOps(cli.Ops)
	if err != nil {
		return err
	}
	nums := make([]flo.E4M3, len(cli.Nums))
	for i, s := range cli.Nums {
		if nums[i], err = parse(s); err != nil {
			return err
		}
	}

	showConversions(w, nums...)
	if len(nums) == 2 {
		fmt.Fprintln(w)
		showOps(w, ops, nums[0], nums[1])
	}
	return nil
}

func parseOps(os string) (map[string]bool, error) {
	all := make(map[string]bool)
	for _, o := range opKeys {
		all[o] = true
	}
	if os == "" {
		return all, nil
	}
	result := make(map[string]bool)
	for _, o := range strings.Split(os, ",") {
		if !all[o] {
			return nil, fmt.Errorf("unknown op %q", o)
		}
		result[o] = true
	}
	return result, nil
}

// parse reads a bit pattern. Negative numbers are taken as two's complement
// so that -128 to 255 all fit.
func parse(s string) (flo.E4M3, error) {
	raw, err := strconv.ParseInt(s, 0, 16)
	if err != nil {
		return 0, err
	}
	if raw < -128 || raw > 255 {
		return 0, fmt.Errorf("%d doesn't fit in 8 bits", raw)
	}
	return flo.E4M3(uint8(raw)), nil
}

func showConversions(w io.Writer, fs ...flo.E4M3) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"bits", "binary", "sign", "exp", "mant", "value", "float32", "float16", "bfloat16"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, f := range fs {
		s, e, m := f.Components()
		table.Append([]string{
			fmt.Sprintf("0x%02x", f.Bits()),
			fmt.Sprintf("%b_%04b_%03b", s, e, m),
			strconv.Itoa(int(s)),
			strconv.Itoa(int(e)),
			strconv.Itoa(int(m)),
			f.String(),
			fmt.Sprintf("0x%08x", math.Float32bits(f.Float32())),
			fmt.Sprintf("0x%04x", f.Float16().Bits()),
			fmt.Sprintf("0x%04x", uint16(bfloat16.FromFloat32(f.Float32()))),
		})
	}
	table.Render()
}

type op struct {
	expr  string
	exact float32
	got   flo.E4M3
}

func ops(a, b flo.E4M3) map[string][]op {
	fa, fb := a.Float32(), b.Float32()
	return map[string][]op{
		"neg": {
			{"-a", -fa, flo.Neg(a)},
			{"-b", -fb, flo.Neg(b)},
		},
		"abs": {
			{"|a|", float32(math.Abs(float64(fa))), flo.Abs(a)},
			{"|b|", float32(math.Abs(float64(fb))), flo.Abs(b)},
		},
		"add": {{"a + b", fa + fb, flo.Add(a, b)}},
		"sub": {{"a - b", fa - fb, flo.Sub(a, b)}},
		"mul": {{"a * b", fa * fb, flo.Mul(a, b)}},
		"div": {{"a / b", fa / fb, flo.Div(a, b)}},
		"fma": {{"a * b + a", fa*fb + fa, flo.FMA(a, b, a)}},
	}
}

func showOps(w io.Writer, show map[string]bool, a, b flo.E4M3) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"op", "float32", "result", "bits", "precision"})
	results := ops(a, b)
	for _, k := range opKeys {
		if !show[k] {
			continue
		}
		for _, o := range results[k] {
			table.Append([]string{
				o.expr,
				strconv.FormatFloat(float64(o.exact), 'g', -1, 32),
				o.got.String(),
				fmt.Sprintf("0x%02x", o.got.Bits()),
				flo.PrecisionFromFloat32(o.exact).String(),
			})
		}
	}
	table.Render()
}

const help = `show-flo shows the parts and conversions of E4M3 bit patterns.

Each num is an integer literal in Go syntax. If a second number is provided,
also shows the results of various operations between them.`
