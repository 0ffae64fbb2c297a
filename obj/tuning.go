package obj

// Tuning holds the gameplay constants. The zero value is not usable; start
// from DefaultTuning.
type Tuning struct {
	Gravity            float64 `yaml:"gravity"`
	PlayerSpeed        float64 `yaml:"player_speed"`
	JumpSpeed          float64 `yaml:"jump_speed"`
	DuckSpeed          float64 `yaml:"duck_speed"`
	EnemySpeed         float64 `yaml:"enemy_speed"`
	MushroomSpeed      float64 `yaml:"mushroom_speed"`
	TurtleSpeed        float64 `yaml:"turtle_speed"`
	FlagpoleSlideSpeed float64 `yaml:"flagpole_slide_speed"`
	InvulnerableTime   float64 `yaml:"invulnerable_time"`
	GoombaCorpseTime   float64 `yaml:"goomba_corpse_time"`
	FrameTime          float64 `yaml:"frame_time"`
	PlayerFrameTime    float64 `yaml:"player_frame_time"`
	CoinFrameTime      float64 `yaml:"coin_frame_time"`
	MaxSubStep         float64 `yaml:"max_sub_step"`
	CameraOffsetX      float64 `yaml:"camera_offset_x"`
	CameraOffsetY      float64 `yaml:"camera_offset_y"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Gravity:            500,
		PlayerSpeed:        100,
		JumpSpeed:          300,
		DuckSpeed:          450,
		EnemySpeed:         60,
		MushroomSpeed:      60,
		TurtleSpeed:        120,
		FlagpoleSlideSpeed: 150,
		InvulnerableTime:   0.6,
		GoombaCorpseTime:   1,
		FrameTime:          0.075,
		PlayerFrameTime:    0.01,
		CoinFrameTime:      0.07,
		MaxSubStep:         0.02,
		CameraOffsetX:      -100,
		CameraOffsetY:      -300,
	}
}

// withDefaults fills in non-positive timers so a partially written config
// file cannot stall the step loop.
func (t Tuning) withDefaults() Tuning {
	d := DefaultTuning()
	if t == (Tuning{}) {
		return d
	}
	if t.MaxSubStep <= 0 {
		t.MaxSubStep = d.MaxSubStep
	}
	if t.FrameTime <= 0 {
		t.FrameTime = d.FrameTime
	}
	if t.PlayerFrameTime <= 0 {
		t.PlayerFrameTime = d.PlayerFrameTime
	}
	if t.CoinFrameTime <= 0 {
		t.CoinFrameTime = d.CoinFrameTime
	}
	return t
}
