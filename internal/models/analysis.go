package models

import "time"

// AnalysisStatus marks whether a sub-analysis could be computed
type AnalysisStatus string

const (
	StatusAnalyzed         AnalysisStatus = "analyzed"
	StatusNoData           AnalysisStatus = "no_data"
	StatusInsufficientData AnalysisStatus = "insufficient_data"
	StatusNoTreatments     AnalysisStatus = "no_treatments"
	StatusNoGoals          AnalysisStatus = "no_goals"
)

// TrendDirection classifies how a value moves over time
type TrendDirection string

const (
	TrendIncreasing       TrendDirection = "increasing"
	TrendDecreasing       TrendDirection = "decreasing"
	TrendStable           TrendDirection = "stable"
	TrendImproving        TrendDirection = "improving"
	TrendDeclining        TrendDirection = "declining"
	TrendInsufficientData TrendDirection = "insufficient_data"
)

// CorrelationDirection classifies the sign of a day-aligned correlation
type CorrelationDirection string

const (
	CorrelationPositive         CorrelationDirection = "positive"
	CorrelationNegative         CorrelationDirection = "negative"
	CorrelationNone             CorrelationDirection = "none"
	CorrelationInsufficientData CorrelationDirection = "insufficient_data"
)

// RiskLevel is the categorical output of the weighted risk composite
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// SuggestionType enumerates the suggestion categories the engine emits
type SuggestionType string

const (
	SuggestionDataCollection       SuggestionType = "data_collection"
	SuggestionSymptomManagement    SuggestionType = "symptom_management"
	SuggestionMoodIntervention     SuggestionType = "mood_intervention"
	SuggestionActivityModification SuggestionType = "activity_modification"
	SuggestionRiskMitigation       SuggestionType = "risk_mitigation"
	SuggestionWellnessImprovement  SuggestionType = "wellness_improvement"
)

// SuggestionPriority ranks how urgently a suggestion should be acted on
type SuggestionPriority string

const (
	PriorityLow    SuggestionPriority = "low"
	PriorityMedium SuggestionPriority = "medium"
	PriorityHigh   SuggestionPriority = "high"
	PriorityUrgent SuggestionPriority = "urgent"
)

// Suggestion is a ranked, reasoned recommendation produced by the engine
type Suggestion struct {
	ID                   string             `json:"id,omitempty" db:"id"`
	PatientID            string             `json:"patient_id" db:"patient_id"`
	Type                 SuggestionType     `json:"suggestion_type" db:"suggestion_type"`
	Title                string             `json:"title" db:"title"`
	Description          string             `json:"description" db:"description"`
	Reasoning            string             `json:"reasoning" db:"reasoning"`
	ConfidenceScore      float64            `json:"confidence_score" db:"confidence_score"`
	Priority             SuggestionPriority `json:"priority" db:"priority"`
	ImplementationSteps  []string           `json:"implementation_steps" db:"-"`
	ExpectedOutcomes     []string           `json:"expected_outcomes" db:"-"`
	MonitoringParameters []string           `json:"monitoring_parameters" db:"-"`
	CurrentTreatmentID   *string            `json:"current_treatment_id,omitempty" db:"current_treatment_id"`
	CreatedAt            time.Time          `json:"created_at,omitempty" db:"created_at"`
}

// TrendResult is the output of a windowed-delta trend estimate
type TrendResult struct {
	Trend              TrendDirection `json:"trend"`
	Delta              float64        `json:"delta"`
	RecentAverage      float64        `json:"recent_average"`
	Confidence         float64        `json:"confidence"`
	MostCommonSymptoms []NameCount    `json:"most_common_symptoms,omitempty"`
	RecentStressAvg    *float64       `json:"recent_stress_average,omitempty"`
	RecentEnergyAvg    *float64       `json:"recent_energy_average,omitempty"`
}

// NameCount pairs a label with an occurrence count
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CorrelationResult is the output of a day-aligned Pearson correlation
type CorrelationResult struct {
	Strength              float64              `json:"correlation_strength"`
	Direction             CorrelationDirection `json:"correlation_type"`
	Confidence            float64              `json:"confidence"`
	RecommendedActivities []string             `json:"recommended_activities,omitempty"`
}

// RiskAssessment is the weighted risk composite over recent windows
type RiskAssessment struct {
	OverallRiskScore float64            `json:"overall_risk_score"`
	RiskLevel        RiskLevel          `json:"risk_level"`
	RiskFactors      map[string]float64 `json:"risk_factors"`
	Recommendations  []string           `json:"recommendations"`
}

// TreatmentEffectiveness is the weighted effectiveness composite for
// the newest treatment plan
type TreatmentEffectiveness struct {
	Status                 AnalysisStatus     `json:"status"`
	CurrentTreatmentID     string             `json:"current_treatment_id,omitempty"`
	TreatmentDurationDays  int                `json:"treatment_duration_days,omitempty"`
	EffectivenessScore     float64            `json:"effectiveness_score"`
	Metrics                map[string]float64 `json:"metrics"`
	AdherenceRate          float64            `json:"adherence_rate"`
	PatientReportedScore   float64            `json:"patient_reported_effectiveness"`
}

// SymptomPattern summarizes one named symptom across its entries
type SymptomPattern struct {
	Symptom        string         `json:"symptom"`
	Frequency      int            `json:"frequency"`
	AvgSeverity    float64        `json:"avg_severity"`
	SeverityTrend  TrendDirection `json:"severity_trend"`
	CommonTriggers []string       `json:"common_triggers"`
	Locations      []string       `json:"locations"`
}

// SymptomAnalysis is the per-symptom pattern breakdown
type SymptomAnalysis struct {
	Status         AnalysisStatus   `json:"status"`
	TotalEntries   int              `json:"total_entries"`
	UniqueSymptoms int              `json:"unique_symptoms"`
	SymptomBurden  float64          `json:"symptom_burden"`
	Patterns       []SymptomPattern `json:"patterns"`
	OverallTrend   TrendDirection   `json:"overall_trend"`
	FrequencyTrend TrendDirection   `json:"frequency_trend"`
}

// MoodAnalysis is the stability and pattern breakdown of mood entries
type MoodAnalysis struct {
	Status          AnalysisStatus     `json:"status"`
	TotalEntries    int                `json:"total_entries"`
	AverageMood     float64            `json:"average_mood"`
	MoodStability   float64            `json:"mood_stability"`
	MoodTrend       TrendDirection     `json:"mood_trend"`
	MoodVariability float64            `json:"mood_variability"`
	EnergyImpact    float64            `json:"energy_correlation"`
	StressImpact    float64            `json:"stress_impact"`
	SleepImpact     float64            `json:"sleep_impact"`
	WeeklyPatterns  map[string]float64 `json:"weekly_patterns,omitempty"`
	RiskIndicators  []string           `json:"risk_indicators"`
}

// ActivityTypePattern summarizes one activity type
type ActivityTypePattern struct {
	Frequency      int            `json:"frequency"`
	CompletionRate float64        `json:"completion_rate"`
	AvgDuration    float64        `json:"avg_duration"`
	Trend          TrendDirection `json:"trend"`
}

// ActivityAnalysis is the engagement breakdown of activity entries
type ActivityAnalysis struct {
	Status            AnalysisStatus                 `json:"status"`
	TotalActivities   int                            `json:"total_activities"`
	CompletionRate    float64                        `json:"completion_rate"`
	AvgDuration       float64                        `json:"avg_duration"`
	AvgIntensity      float64                        `json:"avg_intensity"`
	ActivityDiversity int                            `json:"activity_diversity"`
	Patterns          map[string]ActivityTypePattern `json:"patterns"`
	EngagementScore   float64                        `json:"engagement_score"`
}

// AssessmentTrend summarizes one assessment type's score trajectory
type AssessmentTrend struct {
	LatestScore int                 `json:"latest_score"`
	Trend       TrendDirection      `json:"trend"`
	RiskLevel   AssessmentRiskLevel `json:"risk_level"`
	Improvement bool                `json:"improvement"`
}

// AssessmentAnalysis groups clinical assessment trends by type
type AssessmentAnalysis struct {
	Status           AnalysisStatus             `json:"status"`
	TotalAssessments int                        `json:"total_assessments"`
	AssessmentTypes  []string                   `json:"assessment_types"`
	Trends           map[string]AssessmentTrend `json:"trends"`
}

// GoalSummary captures a single goal for the progress report
type GoalSummary struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Type     string     `json:"type"`
	Progress float64    `json:"progress"`
	Status   GoalStatus `json:"status"`
}

// GoalProgress summarizes the patient's goal completion state
type GoalProgress struct {
	Status         AnalysisStatus `json:"status"`
	TotalGoals     int            `json:"total_goals"`
	ActiveGoals    int            `json:"active_goals"`
	CompletedGoals int            `json:"completed_goals"`
	CompletionRate float64        `json:"completion_rate"`
	AvgProgress    float64        `json:"avg_progress"`
	Goals          []GoalSummary  `json:"goal_details"`
}

// PredictiveInsight is a forward-looking heuristic projection
type PredictiveInsight struct {
	Trajectory     string  `json:"trajectory,omitempty"`
	Stability      string  `json:"stability,omitempty"`
	Confidence     float64 `json:"confidence"`
	Timeframe      string  `json:"timeframe,omitempty"`
	Recommendation string  `json:"recommendation"`
}

// PatientPhenotype is a coarse patient profile for personalization
type PatientPhenotype struct {
	PrimaryConcerns []string `json:"primary_concerns"`
	MoodTendency    string   `json:"mood_tendency,omitempty"`
	RiskProfile     string   `json:"risk_profile"`
}

// DataQuality scores the completeness and freshness of tracked data
type DataQuality struct {
	Completeness   float64 `json:"completeness"`
	Consistency    float64 `json:"consistency"`
	Recency        float64 `json:"recency"`
	OverallQuality float64 `json:"overall_quality"`
	InvalidEntries int     `json:"invalid_entries"`
}

// DataSufficiency reports whether enough data exists for suggestions
type DataSufficiency struct {
	Symptoms   int  `json:"symptoms"`
	Moods      int  `json:"moods"`
	Activities int  `json:"activities"`
	Sufficient bool `json:"sufficient"`
}

// ProgressAnalysis is the 30-day trend bundle behind suggestion generation
type ProgressAnalysis struct {
	PatientID           string            `json:"patient_id"`
	DataPeriodDays      int               `json:"data_period_days"`
	SymptomTrend        TrendResult       `json:"symptom_trend"`
	MoodTrend           TrendResult       `json:"mood_trend"`
	ActivityCorrelation CorrelationResult `json:"activity_correlation"`
	RiskFactors         []string          `json:"risk_factors"`
	ImprovementAreas    []string          `json:"improvement_areas"`
	DataSufficiency     DataSufficiency   `json:"data_sufficiency"`
}

// AnalysisResult is the comprehensive analysis bundle
type AnalysisResult struct {
	PatientID              string                       `json:"patient_id"`
	AnalysisTimestamp      time.Time                    `json:"analysis_timestamp"`
	DataPeriodDays         int                          `json:"data_period_days"`
	SymptomAnalysis        SymptomAnalysis              `json:"symptom_analysis"`
	MoodAnalysis           MoodAnalysis                 `json:"mood_analysis"`
	ActivityAnalysis       ActivityAnalysis             `json:"activity_analysis"`
	AssessmentTrends       AssessmentAnalysis           `json:"clinical_assessment_trends"`
	GoalProgress           GoalProgress                 `json:"goal_progress"`
	TreatmentEffectiveness TreatmentEffectiveness       `json:"treatment_effectiveness"`
	RiskAssessment         RiskAssessment               `json:"risk_assessment"`
	PredictiveInsights     map[string]PredictiveInsight `json:"predictive_insights"`
	CorrelationMatrix      map[string]float64           `json:"correlation_matrix"`
	Phenotype              PatientPhenotype             `json:"patient_phenotype"`
	DataQuality            DataQuality                  `json:"data_quality"`
}

// HealthVitals is the input to the health-score recommendation path
type HealthVitals struct {
	Age             int     `json:"age" binding:"required"`
	BMI             float64 `json:"bmi" binding:"required"`
	SystolicBP      int     `json:"systolic_bp" binding:"required"`
	DiastolicBP     int     `json:"diastolic_bp" binding:"required"`
	Glucose         float64 `json:"glucose" binding:"required"`
	Cholesterol     float64 `json:"cholesterol" binding:"required"`
	Fatigue         int     `json:"fatigue" binding:"min=0,max=10"`
	ChestPain       int     `json:"chest_pain" binding:"min=0,max=10"`
	ShortnessBreath int     `json:"shortness_breath" binding:"min=0,max=10"`
	Headache        int     `json:"headache" binding:"min=0,max=10"`
	ExerciseHours   float64 `json:"exercise_hours" binding:"min=0"`
	Smoking         int     `json:"smoking" binding:"min=0,max=1"`
	AlcoholUnits    float64 `json:"alcohol_units" binding:"min=0"`
}

// TreatmentRecommendation is one entry in the health-score response
type TreatmentRecommendation struct {
	ID         int     `json:"id"`
	Treatment  string  `json:"treatment"`
	Confidence float64 `json:"confidence"`
	Priority   string  `json:"priority"`
}

// HealthRecommendations is the health-score recommendation response
type HealthRecommendations struct {
	HealthScore      int                       `json:"health_score"`
	Recommendations  []TreatmentRecommendation `json:"recommendations"`
	PrimaryTreatment string                    `json:"primary_treatment"`
	Confidence       float64                   `json:"confidence"`
	RiskLevel        string                    `json:"risk_level"`
	Summary          string                    `json:"summary"`
	ModelSource      string                    `json:"model_source"`
	GeneratedAt      time.Time                 `json:"generated_at"`
}
