package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerAddInvoicePreservesOrder(t *testing.T) {
	t.Parallel()

	c := NewCustomer("Ada", "Lovelace", "ada")
	first := NewInvoice(10, 1, "2023-07-01", "2023-07-02", []LineItem{{Name: "pen", Price: "1.00", Quantity: "10"}})
	second := NewInvoice(20, 2, "2023-07-03", "", nil)

	c.AddInvoice(first)
	c.AddInvoice(second)
	c.AddInvoice(first)

	require.Len(t, c.Invoices, 3)
	assert.Equal(t, first, c.Invoices[0])
	assert.Equal(t, second, c.Invoices[1])
	assert.Equal(t, first, c.Invoices[2], "duplicates are kept")
	assert.NotNil(t, c.Invoices[1].LineItems)
}

func TestEmptyCollectionsRenderAsArrays(t *testing.T) {
	t.Parallel()

	for name, v := range map[string]any{
		"customer": NewCustomer("Ada", "Lovelace", "ada"),
		"team":     NewTeam("Cubs", "Bear"),
		"person":   NewPerson("Ada", "Lovelace", "", nil, nil),
	} {
		data, err := json.Marshal(v)
		require.NoError(t, err, name)
		assert.NotContains(t, string(data), "null", name)
	}
}

func TestTeamAddPlayer(t *testing.T) {
	t.Parallel()

	team := NewTeam("Cubs", "Bear")
	team.AddPlayer(NewPlayer("Ryne", "Sandberg", 1000))

	require.Len(t, team.Players, 1)
	assert.Equal(t, 1000.0, team.Players[0].Salary)
}
