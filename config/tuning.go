package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML overlay accepted by LoadTuning. Only the fields present in the
// document are applied; everything else keeps its current value.
type Tuning struct {
	Fighter *struct {
		Width     *float64 `yaml:"width"`
		Height    *float64 `yaml:"height"`
		Health    *int     `yaml:"health"`
		MoveSpeed *float64 `yaml:"moveSpeed"`
		JumpSpeed *float64 `yaml:"jumpSpeed"`
	} `yaml:"fighter"`

	Player *struct {
		AttackCooldown *int `yaml:"attackCooldown"`
	} `yaml:"player"`

	Enemy *struct {
		PursuitRange   *float64 `yaml:"pursuitRange"`
		ChaseSpeed     *float64 `yaml:"chaseSpeed"`
		AttackChance   *float64 `yaml:"attackChance"`
		CooldownMin    *int     `yaml:"cooldownMin"`
		CooldownSpread *int     `yaml:"cooldownSpread"`
	} `yaml:"enemy"`

	Physics *struct {
		Gravity *float64 `yaml:"gravity"`
		Damping *float64 `yaml:"damping"`
	} `yaml:"physics"`

	Combat *struct {
		Damage       *int     `yaml:"damage"`
		Reach        *float64 `yaml:"reach"`
		AttackHeight *float64 `yaml:"attackHeight"`
	} `yaml:"combat"`

	Loop *struct {
		MaxStepsPerFrame *int `yaml:"maxStepsPerFrame"`
	} `yaml:"loop"`
}

// LoadTuningFile opens path and applies it with LoadTuning.
func LoadTuningFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open tuning file: %w", err)
	}
	defer f.Close()
	return LoadTuning(f)
}

// LoadTuning decodes a YAML tuning document and overlays it onto the global config.
func LoadTuning(r io.Reader) error {
	var t Tuning
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return err
	}
	t.apply()
	return nil
}

func (t *Tuning) validate() error {
	if t.Fighter != nil && t.Fighter.Health != nil && (*t.Fighter.Health <= 0 || *t.Fighter.Health > 100) {
		return fmt.Errorf("fighter.health must be in (0,100], got %d", *t.Fighter.Health)
	}
	if t.Fighter != nil && t.Fighter.Width != nil && *t.Fighter.Width <= 2*Combat.BodyInsetX {
		return fmt.Errorf("fighter.width must exceed %v, got %v", 2*Combat.BodyInsetX, *t.Fighter.Width)
	}
	if t.Player != nil && t.Player.AttackCooldown != nil && *t.Player.AttackCooldown < SwingTicks() {
		return fmt.Errorf("player.attackCooldown must be at least %d ticks, got %d", SwingTicks(), *t.Player.AttackCooldown)
	}
	if t.Enemy != nil && t.Enemy.AttackChance != nil && (*t.Enemy.AttackChance < 0 || *t.Enemy.AttackChance > 1) {
		return fmt.Errorf("enemy.attackChance must be in [0,1], got %v", *t.Enemy.AttackChance)
	}
	if t.Enemy != nil && t.Enemy.CooldownSpread != nil && *t.Enemy.CooldownSpread <= 0 {
		return fmt.Errorf("enemy.cooldownSpread must be positive, got %d", *t.Enemy.CooldownSpread)
	}
	if t.Loop != nil && t.Loop.MaxStepsPerFrame != nil && *t.Loop.MaxStepsPerFrame < 1 {
		return fmt.Errorf("loop.maxStepsPerFrame must be at least 1, got %d", *t.Loop.MaxStepsPerFrame)
	}
	return nil
}

func (t *Tuning) apply() {
	if f := t.Fighter; f != nil {
		setFloat(&Fighter.Width, f.Width)
		setFloat(&Fighter.Height, f.Height)
		setInt(&Fighter.Health, f.Health)
		setFloat(&Fighter.MoveSpeed, f.MoveSpeed)
		setFloat(&Fighter.JumpSpeed, f.JumpSpeed)
	}
	if p := t.Player; p != nil {
		setInt(&Player.AttackCooldown, p.AttackCooldown)
	}
	if e := t.Enemy; e != nil {
		setFloat(&Enemy.PursuitRange, e.PursuitRange)
		setFloat(&Enemy.ChaseSpeed, e.ChaseSpeed)
		setFloat(&Enemy.AttackChance, e.AttackChance)
		setInt(&Enemy.CooldownMin, e.CooldownMin)
		setInt(&Enemy.CooldownSpread, e.CooldownSpread)
	}
	if p := t.Physics; p != nil {
		setFloat(&Physics.Gravity, p.Gravity)
		setFloat(&Physics.Damping, p.Damping)
	}
	if c := t.Combat; c != nil {
		setInt(&Combat.Damage, c.Damage)
		setFloat(&Combat.Reach, c.Reach)
		setFloat(&Combat.AttackHeight, c.AttackHeight)
	}
	if l := t.Loop; l != nil {
		setInt(&Loop.MaxStepsPerFrame, l.MaxStepsPerFrame)
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
