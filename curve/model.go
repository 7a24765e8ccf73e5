package curve

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Storage interface {
	Load(key string) (ps []*Point, err error)
	Save(key string, ps []*Point) error
}
