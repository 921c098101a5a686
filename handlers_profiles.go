package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"dialin/engine"
	"dialin/models"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// equipmentOK mirrors the engine's structural checks so a profile that can
// never produce a recipe is rejected at save time, with the engine's own
// error message.
func equipmentOK(eq engine.EquipmentProfile) error {
	_, err := engine.Compute(eq,
		engine.BeanInfo{BeanType: engine.BeanSingleOrigin, RoastLevel: engine.RoastMedium, ProcessMethod: engine.ProcessWashed, RoastDateDaysAgo: 10},
		engine.BrewTargets{Ratio: 2, BrewTimeMinSec: 25, BrewTimeMaxSec: 30, TastePreference: engine.TasteBalanced},
		engine.DefaultWeather(), nil)
	return err
}

// handleCreateProfile inserts a new equipment profile for the current user.
func (a *App) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)

	var req createProfileReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if err := equipmentOK(req.Equipment); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p := models.BrewProfile{
		OwnerID:   uid,
		Name:      req.Name,
		Equipment: req.Equipment,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	res, err := a.profiles.InsertOne(ctx, &p)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	_ = json.NewEncoder(w).Encode(p)
}

// handleListProfiles returns the current user's profiles, newest first.
func (a *App) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	cur, err := a.profiles.Find(ctx, bson.M{"ownerId": uid}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer cur.Close(ctx)

	var out []models.BrewProfile
	if err := cur.All(ctx, &out); err != nil {
		http.Error(w, "decode error", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleGetProfile returns a single profile by id (owned by the user).
func (a *App) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)
	idStr := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var p models.BrewProfile
	if err := a.profiles.FindOne(ctx, bson.M{"_id": oid, "ownerId": uid}).Decode(&p); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(p)
}

// handleUpdateProfile replaces name/equipment/notes if provided.
func (a *App) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)
	idStr := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	var req struct {
		Name      *string                  `json:"name"`
		Equipment *engine.EquipmentProfile `json:"equipment"`
		Notes     *string                  `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	set := bson.M{}
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		set["name"] = *req.Name
	}
	if req.Equipment != nil {
		if err := equipmentOK(*req.Equipment); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		set["equipment"] = *req.Equipment
	}
	if req.Notes != nil {
		set["notes"] = *req.Notes
	}
	if len(set) == 0 {
		http.Error(w, "nothing to update", http.StatusBadRequest)
		return
	}
	set["updatedAt"] = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	res := a.profiles.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "ownerId": uid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var out models.BrewProfile
	if err := res.Decode(&out); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleDeleteProfile removes a profile by id.
func (a *App) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)
	idStr := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := a.profiles.DeleteOne(ctx, bson.M{"_id": oid, "ownerId": uid})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(bson.M{"ok": true})
}
