package servingwindow

import (
	"time"

	"github.com/clicks-pr/clicks-core/internal/domain"
)

// Window — разрешенный интервал продажи алкоголя на текущие гражданские сутки,
// в минутах от местной полуночи.
type Window struct {
	StartMins  int
	CutoffMins int
	Allowed    bool
}

// Resolve вычисляет действующее окно продажи алкоголя для заведения на момент now.
//
// Приоритеты:
//   - начало: переопределение муниципалитета на сегодняшний день недели, иначе дефолт муниципалитета;
//   - отсечка: переопределение заведения, иначе переопределение муниципалитета на день, иначе дефолт.
//     Заведение переопределяет только отсечку, начало — никогда.
//
// Если start <= cutoff, окно действует в пределах одних суток: [start, cutoff).
// Если start > cutoff, окно переваливает через полночь: разрешено при now >= start ИЛИ now < cutoff
// (например start=1080, cutoff=120 дает 18:00-23:59 и 00:00-01:59).
//
// Функция чистая: время и зона передаются явно, никакого I/O.
func Resolve(m domain.Municipality, venueCutoffOverrideMins *int, now time.Time, loc *time.Location) Window {
	local := now.In(loc)
	nowMins := local.Hour()*60 + local.Minute()
	dow := int(local.Weekday())

	start := m.DefaultStartMins
	if d := m.DayStartMins[dow]; d != nil {
		start = *d
	}

	cutoff := m.DefaultCutoffMins
	if d := m.DayCutoffMins[dow]; d != nil {
		cutoff = *d
	}
	if venueCutoffOverrideMins != nil {
		cutoff = *venueCutoffOverrideMins
	}

	return Window{
		StartMins:  start,
		CutoffMins: cutoff,
		Allowed:    contains(start, cutoff, nowMins),
	}
}

func contains(start, cutoff, nowMins int) bool {
	if start <= cutoff {
		return nowMins >= start && nowMins < cutoff
	}
	return nowMins >= start || nowMins < cutoff
}
