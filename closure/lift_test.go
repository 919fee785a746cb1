// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package closure

import (
	"strconv"
	"testing"

	"github.com/jenspresser/groovy-core/common/result"
	"github.com/stretchr/testify/require"
)

func TestLift_SuccessfulCallProducesOkResult(t *testing.T) {
	require := require.New(t)
	parse := Lift(strconv.Atoi)

	value, err := parse("12").Get()
	require.NoError(err)
	require.Equal(12, value)
}

func TestLift_FailingCallProducesErrResult(t *testing.T) {
	require := require.New(t)
	parse := Lift(strconv.Atoi)

	res := parse("not-a-number")
	require.True(res.IsErr())
	_, err := res.Get()
	require.Error(err)
}

func TestLift_ComposesWithResultCombinators(t *testing.T) {
	require := require.New(t)
	parse := Lift(strconv.Atoi)

	doubled := result.Map(parse("21"), func(v int) int { return v * 2 })
	value, err := doubled.Get()
	require.NoError(err)
	require.Equal(42, value)
}

func TestApply_RunsTheFunctionAsynchronously(t *testing.T) {
	require := require.New(t)
	square := Func1[int, int](func(v int) int { return v * v })

	future := Apply(square, 9)
	require.Equal(81, future.Await())
}
