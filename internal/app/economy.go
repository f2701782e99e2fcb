// internal/app/economy.go
package app

import (
	"math"

	"github.com/Bassie1994/Towerz-sub000/internal/config"
)

// Economy — денежная книга сессии: баланс и накопительные счётчики.
// Баланс никогда не уходит в минус: списание, превышающее баланс,
// отклоняется без изменения состояния.
type Economy struct {
	balance int
	earned  int
	spent   int
}

func NewEconomy(startingBalance int) *Economy {
	return &Economy{balance: startingBalance}
}

func (e *Economy) Balance() int     { return e.balance }
func (e *Economy) TotalEarned() int { return e.earned }
func (e *Economy) TotalSpent() int  { return e.spent }

// CanAfford — хватает ли денег на сумму.
func (e *Economy) CanAfford(cost int) bool {
	return cost >= 0 && e.balance >= cost
}

// Spend списывает сумму. false — недостаточно средств, баланс не меняется.
func (e *Economy) Spend(cost int) bool {
	if !e.CanAfford(cost) {
		return false
	}
	e.balance -= cost
	e.spent += cost
	return true
}

// Earn безусловно зачисляет сумму.
func (e *Economy) Earn(amount int) {
	if amount <= 0 {
		return
	}
	e.balance += amount
	e.earned += amount
}

// SellValue — выручка за башню: floor(вложено × доля) со строгой
// амортизацией, продажа никогда не окупает вложенное.
func SellValue(invested int) int {
	if invested <= 0 {
		return 0
	}
	return int(math.Floor(float64(invested) * config.SellFraction))
}

// WaveCompletionBonus — премия за волну, монотонно растёт с номером.
func WaveCompletionBonus(waveNumber int) int {
	return config.WaveBonusBase + waveNumber*config.WaveBonusPerWave
}

// SetBalance восстанавливает баланс при загрузке сохранения.
func (e *Economy) SetBalance(balance int) {
	if balance < 0 {
		balance = 0
	}
	e.balance = balance
}
