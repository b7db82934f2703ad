package config

import (
	"fmt"

	"terra/internal/hydraulic"
	"terra/internal/terrain"
	"terra/internal/thermal"
)

// Doc is the generic, format-agnostic document tree the parser consumes.
// A concrete serialization format (JSON, YAML, ...) is the boundary
// adapter's concern (internal/docio); the parser only ever sees this
// type-tagged tree.
type Doc = map[string]any

// Parse turns an input document into a typed PipelineConfig. Apart from
// rejecting a job startFrame below 1, it does not enforce frame-range
// semantics (endFrame bounds, start/end ordering); that is the validator's
// job.
func Parse(doc Doc) (*PipelineConfig, error) {
	if doc == nil {
		return nil, &SyntaxError{Path: "$", Reason: "document must be an object"}
	}

	totalFramesRaw, ok := doc["totalFrames"]
	if !ok {
		return nil, &SyntaxError{Path: "$.totalFrames", Reason: "required key missing"}
	}
	totalFrames, ok := asInt(totalFramesRaw)
	if !ok {
		return nil, &SemanticError{Path: "$.totalFrames", Reason: "must be an integer"}
	}
	if totalFrames < 1 {
		return nil, &SemanticError{Path: "$.totalFrames", Reason: "must be >= 1"}
	}

	step0Raw, ok := doc["step0"]
	if !ok {
		return nil, &SyntaxError{Path: "$.step0", Reason: "required key missing"}
	}
	step0Doc, ok := asDoc(step0Raw)
	if !ok {
		return nil, &SyntaxError{Path: "$.step0", Reason: "must be an object"}
	}
	step0, err := parseModelingSpec(step0Doc)
	if err != nil {
		return nil, err
	}

	jobs := []Job{}
	if jobsRaw, ok := doc["jobs"]; ok && jobsRaw != nil {
		jobsSlice, ok := asSlice(jobsRaw)
		if !ok {
			return nil, &SyntaxError{Path: "$.jobs", Reason: "must be a sequence"}
		}
		for i, jr := range jobsSlice {
			jDoc, ok := asDoc(jr)
			if !ok {
				return nil, &SyntaxError{Path: fmt.Sprintf("$.jobs[%d]", i), Reason: "must be an object"}
			}
			job, err := parseJob(jDoc, i)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, job)
		}
	}

	return &PipelineConfig{TotalFrames: totalFrames, Step0: step0, Jobs: jobs}, nil
}

func parseModelingSpec(d Doc) (terrain.Spec, error) {
	spec := terrain.DefaultSpec()

	methodRaw, ok := d["method"]
	if !ok {
		return spec, &SyntaxError{Path: "$.step0.method", Reason: "required key missing"}
	}
	methodStr, ok := asString(methodRaw)
	if !ok {
		return spec, &SyntaxError{Path: "$.step0.method", Reason: "must be a string"}
	}

	switch methodStr {
	case "perlin":
		spec.Method = terrain.MethodPerlin
	case "fbm":
		spec.Method = terrain.MethodFbm
	case "semiSphere":
		spec.Method = terrain.MethodSemiSphere
	case "cone":
		spec.Method = terrain.MethodCone
	case "sigmoid":
		spec.Method = terrain.MethodSigmoid
	case "flat":
		spec.Method = terrain.MethodFlat
	default:
		return spec, &SemanticError{Path: "$.step0.method", Reason: fmt.Sprintf("unknown modeling method %q", methodStr)}
	}

	if v, ok := d["seed"]; ok {
		if n, ok := asInt(v); ok {
			spec.Seed = uint32(n)
		}
	}
	if v, ok := d["frequency"]; ok {
		if n, ok := asFloat(v); ok {
			spec.Frequency = n
		}
	}
	if v, ok := d["amplitude"]; ok {
		if n, ok := asFloat(v); ok {
			spec.Amplitude = n
		}
	}
	if v, ok := d["octaves"]; ok {
		if n, ok := asInt(v); ok {
			spec.Octaves = n
		}
	}
	if v, ok := d["persistence"]; ok {
		if n, ok := asFloat(v); ok {
			spec.Persistence = n
		}
	}
	if v, ok := d["lacunarity"]; ok {
		if n, ok := asFloat(v); ok {
			spec.Lacunarity = n
		}
	}
	if v, ok := d["radius"]; ok {
		if n, ok := asFloat(v); ok {
			spec.Radius = n
		}
	}
	if v, ok := d["height"]; ok {
		if n, ok := asFloat(v); ok {
			spec.Height = n
		}
	}
	if v, ok := d["value"]; ok {
		if n, ok := asFloat(v); ok {
			spec.Value = n
		}
	}
	if cx, ok := d["centerX"]; ok {
		if n, ok := asFloat(cx); ok {
			spec.CenterX = n
		}
	}
	if cy, ok := d["centerY"]; ok {
		if n, ok := asFloat(cy); ok {
			spec.CenterY = n
		}
	}

	return spec, nil
}

func parseJob(d Doc, index int) (Job, error) {
	path := fmt.Sprintf("$.jobs[%d]", index)

	id, ok := asString(d["id"])
	if !ok {
		return Job{}, &SemanticError{Path: path + ".id", Reason: "required string missing"}
	}
	name, ok := asString(d["name"])
	if !ok {
		return Job{}, &SemanticError{Path: path + ".name", Reason: "required string missing"}
	}
	startFrame, ok := asInt(d["startFrame"])
	if !ok {
		return Job{}, &SemanticError{Path: path + ".startFrame", Reason: "required integer missing"}
	}
	if startFrame < 1 {
		return Job{}, &SemanticError{Path: path + ".startFrame", Reason: "must be >= 1"}
	}
	endFrame, ok := asInt(d["endFrame"])
	if !ok {
		return Job{}, &SemanticError{Path: path + ".endFrame", Reason: "required integer missing"}
	}
	typeStr, ok := asString(d["type"])
	if !ok {
		return Job{}, &SemanticError{Path: path + ".type", Reason: "required string missing"}
	}

	enabled := true
	if v, ok := d["enabled"]; ok {
		if b, ok := v.(bool); ok {
			enabled = b
		} else {
			return Job{}, &SyntaxError{Path: path + ".enabled", Reason: "must be a boolean"}
		}
	}

	configRaw, ok := d["config"]
	if !ok {
		return Job{}, &SemanticError{Path: path + ".config", Reason: "required key missing"}
	}
	configDoc, ok := asDoc(configRaw)
	if !ok {
		return Job{}, &SyntaxError{Path: path + ".config", Reason: "must be an object"}
	}

	job := Job{ID: id, Name: name, StartFrame: startFrame, EndFrame: endFrame, Enabled: enabled}

	switch typeStr {
	case "hydraulic":
		job.Type = JobHydraulic
		params, numParticles := parseErosionSpec(configDoc)
		job.Hydraulic = params
		job.NumParticles = numParticles
	case "thermal":
		job.Type = JobThermal
		job.Thermal = parseThermalSpec(configDoc)
	default:
		return Job{}, &SemanticError{Path: path + ".type", Reason: fmt.Sprintf("unknown job type %q", typeStr)}
	}

	return job, nil
}

func parseErosionSpec(d Doc) (hydraulic.Params, int) {
	p := hydraulic.DefaultParams()
	numParticles := 0

	if v, ok := d["numParticles"]; ok {
		if n, ok := asInt(v); ok {
			numParticles = n
		}
	}
	if v, ok := d["maxIterations"]; ok {
		if n, ok := asInt(v); ok {
			p.MaxIterations = n
		}
	}
	if v, ok := d["inertia"]; ok {
		if n, ok := asFloat(v); ok {
			p.Inertia = n
		}
	}
	if v, ok := d["sedimentCapacityFactor"]; ok {
		if n, ok := asFloat(v); ok {
			p.SedimentCapacityFactor = n
		}
	}
	if v, ok := d["minSedimentCapacity"]; ok {
		if n, ok := asFloat(v); ok {
			p.MinSedimentCapacity = n
		}
	}
	if v, ok := d["erodeSpeed"]; ok {
		if n, ok := asFloat(v); ok {
			p.ErodeSpeed = n
		}
	}
	if v, ok := d["depositSpeed"]; ok {
		if n, ok := asFloat(v); ok {
			p.DepositSpeed = n
		}
	}
	if v, ok := d["evaporateSpeed"]; ok {
		if n, ok := asFloat(v); ok {
			p.EvaporateSpeed = n
		}
	}
	if v, ok := d["gravity"]; ok {
		if n, ok := asFloat(v); ok {
			p.Gravity = n
		}
	}
	if v, ok := d["maxDropletSpeed"]; ok {
		if n, ok := asFloat(v); ok {
			p.MaxDropletSpeed = n
		}
	}
	if v, ok := d["erosionRadius"]; ok {
		if n, ok := asInt(v); ok && n >= 1 {
			p.ErosionRadius = n
		}
	}
	return p, numParticles
}

func parseThermalSpec(d Doc) thermal.Spec {
	s := thermal.Spec{}
	if v, ok := d["talusAngle"]; ok {
		if n, ok := asFloat(v); ok {
			s.TalusAngle = n
		}
	}
	if v, ok := d["transferRate"]; ok {
		if n, ok := asFloat(v); ok {
			s.TransferRate = n
		}
	}
	if v, ok := d["iterations"]; ok {
		if n, ok := asInt(v); ok {
			s.Iterations = n
		}
	}
	return s
}

// --- generic document-tree coercion helpers ---

func asDoc(v any) (Doc, bool) {
	d, ok := v.(Doc)
	if ok {
		return d, true
	}
	m, ok := v.(map[string]any)
	return m, ok
}

func asSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case float32:
		if n != float32(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
