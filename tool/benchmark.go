// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"math/big"
	"time"

	"github.com/jenspresser/groovy-core/closure"
	"github.com/jenspresser/groovy-core/common/diagnostics"
	"github.com/jenspresser/groovy-core/memo"
	"github.com/urfave/cli/v2"
)

var BenchmarkCmd = cli.Command{
	Action: diagnostics.AddPerformanceDiagnosticsAction(
		doBenchmark, &diagnosticsFlag, &cpuProfileFlag, &traceFlag),
	Name:  "benchmark",
	Usage: "time plain, memoized, and trampolined workloads",
	Flags: []cli.Flag{
		&inputFlag,
		&runsFlag,
	},
}

var (
	inputFlag = cli.IntFlag{
		Name:  "n",
		Usage: "input size for the benchmark workloads",
		Value: 30,
	}
	runsFlag = cli.IntFlag{
		Name:  "runs",
		Usage: "number of times each workload is repeated",
		Value: 3,
	}
)

func doBenchmark(context *cli.Context) error {
	n := context.Int(inputFlag.Name)
	runs := context.Int(runsFlag.Name)
	if n < 0 || runs < 1 {
		return fmt.Errorf("invalid benchmark parameters n=%d runs=%d", n, runs)
	}

	measure("plain fibonacci", runs, func() {
		fibonacci(n)
	})

	measure("memoized fibonacci", runs, func() {
		var fib func(int) uint64
		memoized := memo.Memoize(func(i int) uint64 { return fib(i) })
		fib = func(i int) uint64 {
			if i < 2 {
				return uint64(i)
			}
			return memoized(i-1) + memoized(i-2)
		}
		fib(n)
	})

	measure("trampolined factorial", runs, func() {
		trampolinedFactorial(n)
	})

	fmt.Println(diagnostics.GetMemoryReport())
	return nil
}

// measure runs the workload the given number of times and prints the average
// wall-clock duration.
func measure(name string, runs int, workload func()) {
	start := time.Now()
	for range runs {
		workload()
	}
	average := time.Since(start) / time.Duration(runs)
	fmt.Printf("%-24s %12v / run\n", name, average)
}

// fibonacci is the naive exponential recursion, serving as the non-memoized
// baseline.
func fibonacci(n int) uint64 {
	if n < 2 {
		return uint64(n)
	}
	return fibonacci(n-1) + fibonacci(n-2)
}

// trampolinedFactorial computes n! with an accumulator-passing recursion run
// on a trampoline, keeping the stack flat for arbitrarily large n.
func trampolinedFactorial(n int) *big.Int {
	var step func(n int, total *big.Int) closure.Bounce[*big.Int]
	step = func(n int, total *big.Int) closure.Bounce[*big.Int] {
		if n <= 1 {
			return closure.Done(total)
		}
		return closure.Call(func() closure.Bounce[*big.Int] {
			return step(n-1, new(big.Int).Mul(total, big.NewInt(int64(n))))
		})
	}
	return closure.Trampoline(step(n, big.NewInt(1)))
}
