package http

import "image-insights-srv/internal/structured"

// =====================================================
// Request DTOs
// =====================================================

type emitReq struct {
	Kind    string                 `json:"kind" binding:"required"`
	Payload map[string]interface{} `json:"payload" binding:"required"`
}

func (r emitReq) toInput() structured.EmitInput {
	return structured.EmitInput{
		Kind:    r.Kind,
		Payload: r.Payload,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type documentResp struct {
	Kind      string                 `json:"kind"`
	Data      map[string]interface{} `json:"data"`
	Published bool                   `json:"published"`
}

func (h *handler) newDocumentResp(doc structured.Document) documentResp {
	return documentResp{
		Kind:      doc.Kind,
		Data:      doc.Data,
		Published: doc.Published,
	}
}
