// Package mocks provides centralized mock implementations for testing.
//
// Mocks use function fields for per-test behavior and record their calls so
// tests can assert what reached the boundary:
//
//	gen := &mocks.MockGenerator{
//	    GenerateFn: func(ctx context.Context, req generation.Request) (string, error) {
//	        return "Subject: Hi\n\nBody", nil
//	    },
//	}
//	handler := api.NewEmailHandler(gen, logger)
//	// ...
//	assert.Equal(t, 1, gen.CallCount())
package mocks
