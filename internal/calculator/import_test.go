package calculator

import (
	"reflect"
	"testing"

	"github.com/mmynk/agencydesk/internal/models"
)

func TestParseCostImport(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []models.Cost
	}{
		{
			name: "well formed lines",
			text: "Arriendo\t450000\tFijo\tOficina\nFreelance\t120000\tVariable\tPersonal",
			want: []models.Cost{
				{Name: "Arriendo", Amount: 450000, Type: models.CostTypeFixed, Category: "Oficina"},
				{Name: "Freelance", Amount: 120000, Type: models.CostTypeVariable, Category: "Personal"},
			},
		},
		{
			name: "amount is stripped to digits",
			text: "Adobe CC\t$65.990 CLP\tFijo\tSoftware",
			want: []models.Cost{
				{Name: "Adobe CC", Amount: 65990, Type: models.CostTypeFixed, Category: "Software"},
			},
		},
		{
			name: "missing type and category use defaults",
			text: "Hosting\t15000",
			want: []models.Cost{
				{Name: "Hosting", Amount: 15000, Type: models.CostTypeFixed, Category: "General"},
			},
		},
		{
			name: "malformed type falls back to Fijo",
			text: "Dominio\t12000\tanual\t",
			want: []models.Cost{
				{Name: "Dominio", Amount: 12000, Type: models.CostTypeFixed, Category: "General"},
			},
		},
		{
			name: "malformed lines are dropped",
			text: "\nSolo nombre\n\t5000\tFijo\nSin monto\tgratis\nLuz\t40000\r\n",
			want: []models.Cost{
				{Name: "Luz", Amount: 40000, Type: models.CostTypeFixed, Category: "General"},
			},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCostImport(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseCostImport() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseCostImport_Idempotent(t *testing.T) {
	text := "Arriendo\t450000\tFijo\tOficina\nFreelance\t120000\tVariable\tPersonal"
	first := ParseCostImport(text)
	second := ParseCostImport(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two parses differ: %+v vs %+v", first, second)
	}
}
