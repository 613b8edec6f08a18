package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	if err := c.Pipeline.validate(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	return nil
}

func (p *PipelineConfig) validate() error {
	if p.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be > 0 (got %d)", p.ChunkSize)
	}
	if p.ChunkTimeout <= 0 {
		return fmt.Errorf("chunk_timeout must be > 0 (got %v)", p.ChunkTimeout)
	}
	if p.IdeaTimeout <= 0 {
		return fmt.Errorf("idea_timeout must be > 0 (got %v)", p.IdeaTimeout)
	}
	if p.TopKeywords <= 0 {
		return fmt.Errorf("top_keywords must be > 0 (got %d)", p.TopKeywords)
	}
	if p.IdeasPerGeneration <= 0 {
		return fmt.Errorf("ideas_per_generation must be > 0 (got %d)", p.IdeasPerGeneration)
	}
	if p.MaxCommentsPerBatch <= 0 {
		return fmt.Errorf("max_comments_per_batch must be > 0 (got %d)", p.MaxCommentsPerBatch)
	}
	return nil
}
