package testutil

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

// AssertVecNear проверяет каждую компоненту вектора с абсолютной погрешностью delta.
// mgl64.ApproxEqual сравнивает с нулём по epsilon², поэтому остаток поворота
// вроде 2e-16 для него уже «не равен».
func AssertVecNear(t testing.TB, expected, actual mgl64.Vec3, delta float64) bool {
	t.Helper()

	ok := true
	for i := range expected {
		ok = assert.InDeltaf(t, expected[i], actual[i], delta,
			"component %d: expected %v, got %v", i, expected, actual) && ok
	}
	return ok
}
