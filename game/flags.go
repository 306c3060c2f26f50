package game

import (
	"flag"
	"os"
)

// EnvLinker overrides the linker strategy when the -linker flag is not given
const EnvLinker = "CONSTELLATION_LINKER"

// BindFlags registers the shared field flags on fs, defaulting to c's values
func BindFlags(fs *flag.FlagSet, c *Config) {
	fs.IntVar(&c.ScreenWidth, "width", c.ScreenWidth, "initial surface width in pixels")
	fs.IntVar(&c.ScreenHeight, "height", c.ScreenHeight, "initial surface height in pixels")
	fs.IntVar(&c.ParticleCount, "particles", c.ParticleCount, "number of particles")
	fs.Float64Var(&c.LinkDistance, "link-distance", c.LinkDistance, "distance below which particles are joined")
	fs.Float64Var(&c.InfluenceRadius, "pointer-radius", c.InfluenceRadius, "pointer influence radius")
	fs.BoolVar(&c.ClampToBounds, "clamp", c.ClampToBounds, "clamp bouncing particles back inside the surface")
	fs.StringVar(&c.Linker, "linker", c.Linker, "pair strategy: brute or grid (or set "+EnvLinker+")")
}

// ApplyEnv fills settings from the environment that were not set by flags
func ApplyEnv(fs *flag.FlagSet, c *Config) {
	linkerSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "linker" {
			linkerSet = true
		}
	})
	if v := os.Getenv(EnvLinker); v != "" && !linkerSet {
		c.Linker = v
	}
}
