package constants

// Output directory layout
const (
	DirBranchwise = "branchwise_split"
	DirUniform    = "uniform_groups"
	DirMixed      = "mixed_groups"
)

// Output file naming
const (
	GroupFilePrefix = "group_"
	CSVExtension    = ".csv"
	SummaryFileName = "summary.csv"
	ZipExtension    = ".zip"
)

// Default configuration values
const (
	DefaultOutputDir  = "results"
	DefaultRollColumn = "Roll"
	MinGroupCount     = 1
)

// Summary table labels
const (
	SummaryGroupColumn   = "Group"
	SummaryTotalColumn   = "Total"
	SummaryUniformHeader = "Uniform"
	SummaryMixedHeader   = "Mixed"
	SummaryGroupPrefix   = "G"
)
