// Package goals rotates saving goals through a fixed catalog: draws
// avoid already-used ids, completed goals free their slot only after a
// cooldown. Pure functions, randomness injected by the caller.
package goals

import "github.com/voltly/voltly/pkg/entity"

type CatalogEntry struct {
	ID    string
	Title string
}

var weeklyPool = []CatalogEntry{
	{ID: "sem-a6e5c7fb", Title: "Desligar luzes ao sair de casa"},
	{ID: "sem-84718d5d", Title: "Reduzir o tempo de banho em 2 minutos"},
	{ID: "sem-a5206a6b", Title: "Não usar ar-condicionado 1 dia na semana"},
	{ID: "sem-2c180958", Title: "Usar o micro-ondas ao invés do forno elétrico"},
	{ID: "sem-9fff3df8", Title: "Evitar usar máquina de lavar mais de 2x"},
	{ID: "sem-040bff4b", Title: "Aproveitar luz natural durante o dia"},
	{ID: "sem-cf62cece", Title: "Retirar aparelhos da tomada ao dormir"},
	{ID: "sem-1b7ae06f", Title: "Passar menos tempo com TV ligada"},
	{ID: "sem-d19a711e", Title: "Desligar o roteador à noite"},
	{ID: "sem-aa8c17f8", Title: "Usar menos carregadores ligados sem necessidade"},
}

var monthlyPool = []CatalogEntry{
	{ID: "men-82e356cc", Title: "Reduzir o consumo total em 10%"},
	{ID: "men-ce609147", Title: "Evitar o uso de eletros em horário de pico"},
	{ID: "men-50751b3d", Title: "Monitorar o consumo semanalmente"},
	{ID: "men-7e9e33ae", Title: "Cadastrar todos os eletrônicos no sistema"},
	{ID: "men-12b86e82", Title: "Trocar uma lâmpada por LED"},
	{ID: "men-ade72b43", Title: "Reduzir o uso do ar-condicionado pela metade"},
	{ID: "men-1f5303f0", Title: "Economizar R$50 na conta de luz"},
	{ID: "men-2c5f2157", Title: "Ficar 3 dias sem ligar a TV"},
	{ID: "men-76f16446", Title: "Desligar 100% dos aparelhos ao sair de casa"},
	{ID: "men-7e6cb315", Title: "Evitar banho maior que 5 minutos por 10 dias"},
}

// Pool returns the catalog for a period. The returned slice is shared;
// callers must not modify it.
func Pool(period entity.GoalPeriod) []CatalogEntry {
	if period == entity.GoalWeekly {
		return weeklyPool
	}
	return monthlyPool
}

// CooldownDays is how long a goal occupies its slot before a completed
// one may be replaced.
func CooldownDays(period entity.GoalPeriod) int {
	if period == entity.GoalWeekly {
		return 7
	}
	return 30
}
