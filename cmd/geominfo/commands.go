package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/chewxy/math32"

	"github.com/shadowndacorner/vectormath"
	"github.com/shadowndacorner/vectormath/geom"
)

type options struct {
	prec    int
	degrees bool
}

type commandEntry struct {
	name  string
	args  string
	help  string
	nargs int
	run   func(w io.Writer, args []string, opts options) error
}

var registry = []commandEntry{
	{"shadow", "PLANE LIGHT", "planar shadow matrix (rows)", 2, runShadow},
	{"euler", "PITCH,YAW,ROLL", "Euler angles to quaternion", 1, runEuler},
	{"quat", "X,Y,Z,W", "quaternion to Euler angles", 1, runQuat},
	{"clamp", "X,Y,Z MAX", "clamp vector magnitude", 2, runClamp},
	{"world2model", "TRANSLATION EULER POINT", "world point to model space", 3, runWorldToModel},
	{"layout", "", "flat float layout of each type", 0, runLayout},
}

var errUnknownCommand = errors.New("unknown command (use -list to see available)")

func run(w io.Writer, name string, args []string, opts options) error {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range registry {
		if c.name != name {
			continue
		}
		if len(args) != c.nargs {
			return fmt.Errorf("%s: want %d argument(s) %s, got %d", c.name, c.nargs, c.args, len(args))
		}
		return c.run(w, args, opts)
	}
	return fmt.Errorf("%q: %w", name, errUnknownCommand)
}

// parseFloats parses exactly n comma-separated float32 components.
func parseFloats(s string, n int) ([]float32, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%q: want %d components, got %d", s, n, len(parts))
	}
	out := make([]float32, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("%q: component %d: %w", s, i, err)
		}
		out[i] = float32(v)
	}
	return out, nil
}

func parseVector3(s string) (vectormath.Vector3, error) {
	f, err := parseFloats(s, 3)
	if err != nil {
		return vectormath.Vector3{}, err
	}
	return vectormath.NewVector3(f[0], f[1], f[2]), nil
}

func parseVector4(s string) (vectormath.Vector4, error) {
	f, err := parseFloats(s, 4)
	if err != nil {
		return vectormath.Vector4{}, err
	}
	return vectormath.NewVector4(f[0], f[1], f[2], f[3]), nil
}

func parseEuler(s string, opts options) (vectormath.Vector3, error) {
	e, err := parseVector3(s)
	if err != nil {
		return e, err
	}
	if opts.degrees {
		e = e.Scale(math32.Pi / 180)
	}
	return e, nil
}

func formatFloats(opts options, vs ...float32) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(float64(v), 'f', opts.prec, 32)
	}
	return strings.Join(parts, "\t")
}

func runShadow(w io.Writer, args []string, opts options) error {
	plane, err := parseVector4(args[0])
	if err != nil {
		return fmt.Errorf("plane: %w", err)
	}
	light, err := parseVector4(args[1])
	if err != nil {
		return fmt.Errorf("light: %w", err)
	}

	m := geom.MakeShadowMatrix(plane, light)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for r := 0; r < 4; r++ {
		row := m.Row(r)
		if _, err := fmt.Fprintf(tw, "%s\n", formatFloats(opts, row.X, row.Y, row.Z, row.W)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func runEuler(w io.Writer, args []string, opts options) error {
	e, err := parseEuler(args[0], opts)
	if err != nil {
		return err
	}
	q := geom.FromEuler(e)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "X\tY\tZ\tW\n")
	fmt.Fprintf(tw, "%s\n", formatFloats(opts, q.X, q.Y, q.Z, q.W))
	return tw.Flush()
}

func runQuat(w io.Writer, args []string, opts options) error {
	f, err := parseFloats(args[0], 4)
	if err != nil {
		return err
	}
	e := geom.ToEulerAngle(vectormath.NewQuat(f[0], f[1], f[2], f[3]))
	if opts.degrees {
		e = e.Scale(180 / math32.Pi)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Pitch\tYaw\tRoll\n")
	fmt.Fprintf(tw, "%s\n", formatFloats(opts, e.X, e.Y, e.Z))
	return tw.Flush()
}

func runClamp(w io.Writer, args []string, opts options) error {
	v, err := parseVector3(args[0])
	if err != nil {
		return err
	}
	limit, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		return fmt.Errorf("max: %w", err)
	}
	if limit < 0 {
		return fmt.Errorf("max: %v is negative", limit)
	}

	c := geom.ClampMagnitude(v, float32(limit))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "X\tY\tZ\tLength\n")
	fmt.Fprintf(tw, "%s\n", formatFloats(opts, c.X, c.Y, c.Z, c.Length()))
	return tw.Flush()
}

func runWorldToModel(w io.Writer, args []string, opts options) error {
	t, err := parseVector3(args[0])
	if err != nil {
		return fmt.Errorf("translation: %w", err)
	}
	e, err := parseEuler(args[1], opts)
	if err != nil {
		return fmt.Errorf("euler: %w", err)
	}
	p, err := parseVector3(args[2])
	if err != nil {
		return fmt.Errorf("point: %w", err)
	}

	model := vectormath.TransformFromQuat(geom.FromEuler(e), t).Matrix4()
	if model.Determinant() == 0 {
		return errors.New("model matrix is singular")
	}
	local := geom.WorldPointToModel(model.Inverse(), vectormath.NewPoint3(p.X, p.Y, p.Z))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "X\tY\tZ\n")
	fmt.Fprintf(tw, "%s\n", formatFloats(opts, local.X, local.Y, local.Z))
	return tw.Flush()
}

func runLayout(w io.Writer, _ []string, _ options) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Type\tFloats\tBytes\n")
	fmt.Fprintf(tw, "----\t------\t-----\n")
	for _, e := range []struct {
		name string
		n    int
	}{
		{"Point2", geom.Point2Len},
		{"Point3", geom.Point3Len},
		{"Vector2", geom.Vector2Len},
		{"Vector3", geom.Vector3Len},
		{"Vector4", geom.Vector4Len},
		{"Quat", geom.QuatLen},
		{"Matrix3", geom.Matrix3Len},
		{"Matrix4", geom.Matrix4Len},
		{"Transform3", geom.Transform3Len},
	} {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", e.name, e.n, 4*e.n)
	}
	return tw.Flush()
}
