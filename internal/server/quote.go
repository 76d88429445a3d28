package server

import (
    "encoding/json"
    "math"
    "net/http"
    "strings"

    "courierquote/internal/dataset"
    "courierquote/internal/pricing"
)

type QuoteRequest struct {
    Pincode       string  `json:"pincode"`
    WeightKg      float64 `json:"weightKg"`
    ServiceType   string  `json:"serviceType"`
    TransportMode string  `json:"transportMode"`
}

type QuoteResponse struct {
    OK          bool             `json:"ok"`
    AreaName    string           `json:"areaName"`
    Category    pricing.Category `json:"category"`
    ServiceType string           `json:"serviceType"`
    Price       float64          `json:"price"`
}

const usageHint = "POST JSON { pincode, weightKg, serviceType, transportMode }"

// handleSearch prices a shipment quote for a destination pincode. Non-POST
// requests get a 200 usage hint rather than a method error.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
    if r.Method != http.MethodPost {
        writeJSON(w, http.StatusOK, map[string]any{"ok": true, "msg": usageHint})
        return
    }

    pincodes, pok := s.data.Pincodes()
    urgent, uok := s.data.Urgent()
    if !pok || !uok {
        writeFail(w, http.StatusInternalServerError, "required data files not found; place pincode and urgent workbooks in the data directory")
        return
    }

    var req QuoteRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeFail(w, http.StatusBadRequest, "invalid json")
        return
    }
    if strings.TrimSpace(req.Pincode) == "" || req.WeightKg == 0 || strings.TrimSpace(req.ServiceType) == "" {
        writeFail(w, http.StatusBadRequest, "missing required params: pincode, weightKg, serviceType")
        return
    }

    weightGrams := int(math.Round(req.WeightKg * 1000))

    row, ok := pincodes.FindByValue(req.Pincode)
    if !ok {
        writeFail(w, http.StatusNotFound, "pincode not found in pincode file")
        return
    }
    areaName := pincodes.FieldOf(row, dataset.FieldArea)
    rawCategory := pincodes.FieldOf(row, dataset.FieldCategory)
    if rawCategory == "" {
        writeFail(w, http.StatusInternalServerError, "category not found for this pincode; ensure a Category/Region column exists")
        return
    }
    cat := pricing.Normalize(rawCategory)

    if strings.EqualFold(req.ServiceType, "normal") {
        price, err := pricing.CalcNormal(cat, weightGrams, pricing.TransportMode(req.TransportMode))
        if err != nil {
            writeFail(w, http.StatusBadRequest, err.Error())
            return
        }
        writeJSON(w, http.StatusOK, QuoteResponse{
            OK:          true,
            AreaName:    areaName,
            Category:    cat,
            ServiceType: "Normal",
            Price:       price,
        })
        return
    }

    price, found := pricing.ResolveUrgent(urgent, cat, weightGrams)
    if !found {
        writeFail(w, http.StatusNotFound, "urgent price not available for this weight/category")
        return
    }
    writeJSON(w, http.StatusOK, QuoteResponse{
        OK:          true,
        AreaName:    areaName,
        Category:    cat,
        ServiceType: "Urgent",
        Price:       price,
    })
}
