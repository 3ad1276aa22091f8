package domain

// Canonical content structures, one per document type. Raw input fields are
// all optional; after normalization every field is present, with empty
// collections replaced by defaults and missing strings by placeholders.

// =============================================================================
// Charter
// =============================================================================

// ScopeDefinition separates what the project will and will not deliver.
type ScopeDefinition struct {
	InScope    []string
	OutOfScope []string
}

// Milestone is a dated schedule marker.
type Milestone struct {
	Name        string
	Description string
	Date        string
}

// Stakeholder is a named party with a role and interest in the project.
type Stakeholder struct {
	Name     string
	Role     string
	Interest string
}

// RiskItem is a charter-level risk summary (the full treatment lives in
// the risk register).
type RiskItem struct {
	Description string
	Probability string
	Impact      string
	Mitigation  string
}

// CharterContent is the canonical project charter structure.
type CharterContent struct {
	ExecutiveSummary     string
	VisionStatement      string
	BusinessObjectives   []string
	SuccessCriteria      []string
	Scope                ScopeDefinition
	Deliverables         []string
	Stakeholders         []Stakeholder
	Milestones           []Milestone
	Risks                []RiskItem
	Assumptions          []string
	Constraints          []string
	Budget               string
	ApprovalRequirements []string
}

// =============================================================================
// Business Case
// =============================================================================

// CostBreakdown holds the cost lines of a business case as free-text
// currency amounts ("$100,000").
type CostBreakdown struct {
	Development string
	Operational string
	Maintenance string
	Total       string
}

// ROIAnalysis summarizes the return calculations.
type ROIAnalysis struct {
	PaybackPeriod string
	ROI           string
	NPV           string
}

// BusinessOption is one of the appraised options (do nothing, do minimum,
// do something).
type BusinessOption struct {
	Name        string
	Description string
	Costs       string
	Benefits    string
	Risks       string
}

// BusinessCaseContent is the canonical business case structure.
type BusinessCaseContent struct {
	ExecutiveSummary    string
	ProblemStatement    string
	ProposedSolution    string
	StrategicContext    string
	ExpectedBenefits    []string
	ExpectedDisbenefits []string
	Costs               CostBreakdown
	ROI                 ROIAnalysis
	Options             []BusinessOption
	Risks               []RiskItem
	Timescale           string
	Recommendation      string
}

// =============================================================================
// Risk Register
// =============================================================================

// RegisterRisk is a fully-described risk register entry.
type RegisterRisk struct {
	ID          string
	Category    string
	Description string
	Probability string
	Impact      string
	Response    string // avoid | reduce | transfer | accept
	Mitigation  string
	Owner       string
	Status      string
}

// RiskRegisterContent is the canonical risk register structure.
type RiskRegisterContent struct {
	Risks            []RegisterRisk
	Categories       []string
	OverallRiskLevel string
	ReviewCycle      string
}

// =============================================================================
// Project Plan
// =============================================================================

// Phase is one stage of the delivery schedule.
type Phase struct {
	Name         string
	Description  string
	Duration     string
	Tasks        []string
	Deliverables []string
	Milestones   []string
}

// ProjectPlanContent is the canonical project plan structure.
type ProjectPlanContent struct {
	Overview     string
	Phases       []Phase
	Dependencies []string
	CriticalPath []string
	Resources    []string
}

// =============================================================================
// Backlog
// =============================================================================

// BacklogItem is a single user story or work item.
type BacklogItem struct {
	ID                 string
	Priority           string
	Epic               string
	Story              string
	AcceptanceCriteria []string
	StoryPoints        string
	Sprint             string
	Status             string
}

// BacklogContent is the canonical product backlog structure.
type BacklogContent struct {
	Items          []BacklogItem
	Epics          []string
	VelocityTarget string
	SprintLength   string
}

// =============================================================================
// PID
// =============================================================================

// Tolerances are the PRINCE2 deviation allowances per dimension.
type Tolerances struct {
	Time     string
	Cost     string
	Scope    string
	Risk     string
	Quality  string
	Benefits string
}

// ProjectRole is a named position in the project organization.
type ProjectRole struct {
	Role           string
	Name           string
	Responsibility string
}

// PIDContent is the canonical project initiation document structure.
type PIDContent struct {
	Background           string
	Objectives           []string
	Scope                ScopeDefinition
	Deliverables         []string
	Constraints          []string
	Assumptions          []string
	BusinessCaseSummary  string
	Organization         []ProjectRole
	Tolerances           Tolerances
	CommunicationSummary string
	QualitySummary       string
	TailoringApproach    string
}

// =============================================================================
// Comparable Projects
// =============================================================================

// ComparableProject describes a historical project used for comparison.
type ComparableProject struct {
	Name           string
	Organization   string
	Year           string
	Budget         string
	Duration       string
	Outcome        string
	SuccessFactors []string
	LessonsLearned []string
}

// ComparableProjectsContent is the canonical comparable projects structure.
type ComparableProjectsContent struct {
	Projects        []ComparableProject
	KeyInsights     []string
	Recommendations []string
}

// =============================================================================
// Technical Landscape
// =============================================================================

// TechnologyCategory groups technologies under a heading.
type TechnologyCategory struct {
	Name         string
	Technologies []string
	Maturity     string
}

// TechnicalLandscapeContent is the canonical technical landscape structure.
type TechnicalLandscapeContent struct {
	CurrentState         string
	Categories           []TechnologyCategory
	Trends               []string
	EmergingTechnologies []string
	Recommendations      []string
	RisksAndChallenges   []string
	FutureOutlook        string
}

// =============================================================================
// Communication Plan
// =============================================================================

// CommunicationStakeholder extends a stakeholder with influence/interest
// placement and the agreed channel.
type CommunicationStakeholder struct {
	Name      string
	Role      string
	Interest  string // low | medium | high
	Influence string // low | medium | high
	Method    string
	Frequency string
}

// CommunicationPlanContent is the canonical communication plan structure.
type CommunicationPlanContent struct {
	Objectives     []string
	Stakeholders   []CommunicationStakeholder
	Methods        []string
	EscalationPath []string
	KeyMessages    []string
}

// =============================================================================
// Quality Management
// =============================================================================

// QualityCriterion pairs a measurable criterion with its target.
type QualityCriterion struct {
	Criterion   string
	Target      string
	Measurement string
}

// QualityManagementContent is the canonical quality management structure.
type QualityManagementContent struct {
	Standards           []string
	Objectives          []string
	Criteria            []QualityCriterion
	AssuranceActivities []string
	ControlActivities   []string
	Roles               []ProjectRole
	Tools               []string
	Metrics             []string
}

// =============================================================================
// Kanban
// =============================================================================

// KanbanCard is a single work item on the board.
type KanbanCard struct {
	Title    string
	Assignee string
	Priority string
}

// KanbanColumn is a board column with an optional WIP limit (0 = none).
type KanbanColumn struct {
	Name     string
	WIPLimit int
	Cards    []KanbanCard
}

// KanbanContent is the canonical kanban board structure.
type KanbanContent struct {
	Columns []KanbanColumn
}
