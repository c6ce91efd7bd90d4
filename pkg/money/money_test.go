package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/brewflow-pos/pkg/money"
)

// El redondeo a dos decimales vive solo en la presentación: el dominio entrega
// precisión completa y aquí se fija.
func TestFixed_RedondeaADosDecimales(t *testing.T) {
	assert.Equal(t, "8.64", money.Fixed(decimal.RequireFromString("8.64")))
	assert.Equal(t, "0.64", money.Fixed(decimal.RequireFromString("0.6400")))
	assert.Equal(t, "2.68", money.Fixed(decimal.RequireFromString("2.675").Round(2)))
	assert.Equal(t, "3.00", money.Fixed(decimal.NewFromInt(3)))
}

func TestDisplay_SimboloYSeparadorDeMiles(t *testing.T) {
	assert.Equal(t, "$1,250.75", money.Display(decimal.RequireFromString("1250.75")))
	assert.Equal(t, "$8.64", money.Display(decimal.RequireFromString("8.64")))
}
