package config

// PuzzleConfig holds the tunable constants of every day
type PuzzleConfig struct {
	Input Input  `yaml:"input"`
	Days  Days   `yaml:"days"`
	Title string `yaml:"title"`
}

// Input describes where puzzle inputs are fetched from
type Input struct {
	BaseURL string `yaml:"base_url"`
	Year    int    `yaml:"year"`
}

type Days struct {
	Day01 Day01Config `yaml:"day01"`
	Day03 Day03Config `yaml:"day03"`
	Day06 Day06Config `yaml:"day06"`
	Day07 Day07Config `yaml:"day07"`
	Day09 Day09Config `yaml:"day09"`
	Day10 Day10Config `yaml:"day10"`
}

type Day01Config struct {
	TopN int `yaml:"top_n"`
}

type Day03Config struct {
	GroupSize int `yaml:"group_size"`
}

type Day06Config struct {
	PacketWindow  int `yaml:"packet_window"`
	MessageWindow int `yaml:"message_window"`
}

// Day07Config sizes are in bytes
type Day07Config struct {
	Threshold    int64 `yaml:"threshold"`
	Capacity     int64 `yaml:"capacity"`
	RequiredFree int64 `yaml:"required_free"`
}

type Day09Config struct {
	ShortKnots int `yaml:"short_knots"`
	LongKnots  int `yaml:"long_knots"`
}

type Day10Config struct {
	FirstSample int `yaml:"first_sample"`
	SampleEvery int `yaml:"sample_every"`
	LastSample  int `yaml:"last_sample"`
	ScreenWidth int `yaml:"screen_width"`
}
