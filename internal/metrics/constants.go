package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameFightsTotal     = "fights_total"
	MetricNameFightExchanges  = "fight_exchanges"
	MetricNameDamageTaken     = "hero_damage_taken_total"
	MetricNameEnemiesDefeated = "enemies_defeated_total"
	MetricNameHeroDeaths      = "hero_deaths_total"
	MetricNameItemsEquipped   = "items_equipped_total"
	MetricNameItemsUsed       = "items_used_total"
	MetricNameHealingApplied  = "healing_applied_total"
	MetricNameRoomsEntered    = "rooms_entered_total"
	MetricNameAutoplayRuns    = "autoplay_runs_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextFightsTotal     = "Total number of resolved fights"
	HelpTextFightExchanges  = "Attack exchanges per fight"
	HelpTextDamageTaken     = "Total damage taken by heroes in fights"
	HelpTextEnemiesDefeated = "Total number of enemies defeated"
	HelpTextHeroDeaths      = "Total number of heroes defeated"
	HelpTextItemsEquipped   = "Total number of items equipped"
	HelpTextItemsUsed       = "Total number of consumable items used"
	HelpTextHealingApplied  = "Total health restored by consumable items"
	HelpTextRoomsEntered    = "Total number of room changes"
	HelpTextAutoplayRuns    = "Total number of finished autoplay runs"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelType      = "type"
	LabelItem      = "item"
	LabelSlot      = "slot"
	LabelEnemyKind = "enemy_kind"
	LabelOutcome   = "outcome"
	LabelGenerated = "generated"
)

// Label values
const (
	OutcomeWon      = "won"
	OutcomeLost     = "lost"
	OutcomeSurvived = "survived"
	OutcomeDefeated = "defeated"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// FightExchangeBuckets covers short skirmishes up to long, low-damage fights
var FightExchangeBuckets = []float64{1, 2, 3, 5, 8, 13, 21, 34, 55}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
