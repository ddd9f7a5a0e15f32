package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlab/config"
	"github.com/katalvlaran/gridlab/input"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestSolvers(t *testing.T) {
	cases := []struct {
		solver string
		input  string
		want   string
	}{
		{"pipes", ".....\n.S-7.\n.|.|.\n.L-J.\n.....\n", "part 1: 4\npart 2: 1\n"},
		{"crucible", "2413432311323\n3215453535623\n3255245654254\n3446585845452\n4546657867536\n" +
			"1438598798454\n4457876987766\n3637877979653\n4654967986887\n4564679986453\n" +
			"1224686865563\n2546548887735\n4322674655533\n", "part 1: 102\npart 2: 94\n"},
		{"beam", ".|...\\....\n|.-.\\.....\n.....|-...\n........|.\n..........\n" +
			".........\\\n..../.\\\\..\n.-.-/..|..\n.|....-|.\\\n..//.|....\n", "part 1: 46\npart 2: 51\n"},
		{"platform", "O....#....\nO.OO#....#\n.....##...\nOO.#O....O\n.O.....O#.\n" +
			"O.#..O.#.#\n..O..#O..O\n.......O..\n#....###..\n#OO..#....\n", "part 1: 136\npart 2: 64\n"},
	}
	for _, tc := range cases {
		t.Run(tc.solver, func(t *testing.T) {
			path := writeFile(t, tc.solver+".txt", tc.input)
			got, err := run(t, "--log-level", "warn", tc.solver, path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPulse_WithConfigAndCompressedInput(t *testing.T) {
	network := "broadcaster -> a, c\n%a -> b\n%b -> inva\n&inva -> hub\n%c -> invc\n&invc -> hub\n&hub -> rx\n"
	var buf bytes.Buffer
	require.NoError(t, input.Compress(&buf, network))
	in := writeFile(t, "pulse.txt"+input.Ext, buf.String())
	cfg := writeFile(t, "gridlab.yaml", "pulse:\n  target: rx\n  max_presses: 64\n")

	got, err := run(t, "--config", cfg, "pulse", in)
	require.NoError(t, err)
	assert.Equal(t, "part 1: 16502499\npart 2: 4\n", got)
}

func TestErrors(t *testing.T) {
	path := writeFile(t, "pulse.txt", "broadcaster -> a\n%a -> out\n")

	_, err := run(t, "--log-level", "loud", "pulse", path)
	assert.Error(t, err)

	bad := writeFile(t, "bad.yaml", "beam:\n  workers: -2\n")
	_, err = run(t, "--config", bad, "pulse", path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "pulse", path)
	assert.Error(t, err, "default target rx is absent")

	_, err = run(t, "crucible")
	assert.Error(t, err, "input argument is required")
}
