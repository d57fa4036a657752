// Package achievement evaluates the static achievement catalog against
// aggregated user metrics. Unlocks are monotonic and prerequisite-gated.
package achievement

type Type string

const (
	TypeGoals   Type = "metas"
	TypeDevices Type = "eletronicos"
	TypeTariffs Type = "tarifas"
	TypeMoney   Type = "economia"
	TypeEnergy  Type = "consumo"
	TypeCombo   Type = "combo"
	TypePlaces  Type = "locais"
	TypeRooms   Type = "comodos"
	TypeGeneral Type = "geral"
	TypeStreak  Type = "semanal"
)

type Entry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        Type   `json:"type"`
	Threshold   string `json:"threshold"`
	// Prerequisite must already be unlocked before this entry is even
	// considered.
	Prerequisite string `json:"prerequisite,omitempty"`
}

var catalog = []Entry{
	{ID: "meta-d1685f", Title: "Primeira Meta!", Description: "Conclua sua primeira meta.", Type: TypeGoals, Threshold: "1"},
	{ID: "meta-f9322d", Title: "Foco Total", Description: "Conclua 10 metas.", Type: TypeGoals, Threshold: "10", Prerequisite: "meta-d1685f"},
	{ID: "meta-42ca90", Title: "Maratonista de Metas", Description: "Conclua 30 metas.", Type: TypeGoals, Threshold: "30", Prerequisite: "meta-f9322d"},
	{ID: "eletr-cabcb7", Title: "Engenheiro Doméstico", Description: "Adicione 5 eletrônicos.", Type: TypeDevices, Threshold: "5"},
	{ID: "eletr-881080", Title: "Museu de Eletros", Description: "Adicione 10 eletrônicos.", Type: TypeDevices, Threshold: "10", Prerequisite: "eletr-cabcb7"},
	{ID: "cons-e95ef3", Title: "Caça Desperdício", Description: "Economize mais de 50 kWh.", Type: TypeEnergy, Threshold: "50"},
	{ID: "cons-e4244d", Title: "Economista", Description: "Economize R$100 em um mês.", Type: TypeMoney, Threshold: "100"},
	{ID: "tari-aefa34", Title: "Tarifa Ninja", Description: "Adicione mais de 3 tarifas.", Type: TypeTariffs, Threshold: "3"},
	{ID: "combo-016032", Title: "Tudo no Controle", Description: "Tenha metas, tarifas e eletrônicos ativos.", Type: TypeCombo, Threshold: "all"},
	{ID: "meta-15bccb", Title: "Rotina Brilhante", Description: "Conclua uma meta semanal por 4 semanas seguidas.", Type: TypeStreak, Threshold: "4x consecutivas"},
}

// Catalog returns the full static catalog in display order.
func Catalog() []Entry {
	return catalog
}
