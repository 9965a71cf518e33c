package answersfile

// YAMLAnswers mirrors answers.yaml: year -> day -> expected parts.
// Years and days are map keys so both `2021:` and `"2021":` are accepted.
type YAMLAnswers map[string]map[string]YAMLDay

type YAMLDay struct {
	PartOne string `yaml:"part_one"`
	PartTwo string `yaml:"part_two"`
}
