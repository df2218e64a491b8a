package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	FightsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFightsTotal,
			Help: HelpTextFightsTotal,
		},
		[]string{LabelEnemyKind, LabelOutcome},
	)

	FightExchanges = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameFightExchanges,
			Help:    HelpTextFightExchanges,
			Buckets: FightExchangeBuckets,
		},
	)

	DamageTaken = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDamageTaken,
			Help: HelpTextDamageTaken,
		},
	)

	EnemiesDefeated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEnemiesDefeated,
			Help: HelpTextEnemiesDefeated,
		},
		[]string{LabelEnemyKind},
	)

	HeroDeaths = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHeroDeaths,
			Help: HelpTextHeroDeaths,
		},
		[]string{LabelEnemyKind},
	)

	ItemsEquipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsEquipped,
			Help: HelpTextItemsEquipped,
		},
		[]string{LabelSlot},
	)

	ItemsUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUsed,
			Help: HelpTextItemsUsed,
		},
		[]string{LabelItem},
	)

	HealingApplied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHealingApplied,
			Help: HelpTextHealingApplied,
		},
	)

	RoomsEntered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRoomsEntered,
			Help: HelpTextRoomsEntered,
		},
		[]string{LabelGenerated},
	)

	AutoplayRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAutoplayRuns,
			Help: HelpTextAutoplayRuns,
		},
		[]string{LabelOutcome},
	)
)
