package repository

import (
	"context"

	"game-store-service/models"
	"game-store-service/store"
)

// CampaignRepository defines the interface for campaign data access.
type CampaignRepository interface {
	FindByID(ctx context.Context, id string) (*models.Campaign, error)
	FindAll(ctx context.Context) ([]models.Campaign, error)
	Upsert(ctx context.Context, campaign *models.Campaign) error
	Delete(ctx context.Context, id string) error
}

// KVCampaignRepository implements CampaignRepository over the KV store.
// Campaign order in the collection is insertion order, which is also the
// selection order the pricing engine uses.
type KVCampaignRepository struct {
	coll collection[models.Campaign]
}

// NewKVCampaignRepository creates a KV-backed campaign repository.
func NewKVCampaignRepository(kv store.KV, bus *store.Bus) CampaignRepository {
	return &KVCampaignRepository{coll: newCollection[models.Campaign](kv, bus, store.CollectionCampaigns)}
}

func (r *KVCampaignRepository) FindByID(ctx context.Context, id string) (*models.Campaign, error) {
	campaigns, err := r.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range campaigns {
		if campaigns[i].ID == id {
			return &campaigns[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *KVCampaignRepository) FindAll(ctx context.Context) ([]models.Campaign, error) {
	return r.coll.load(ctx)
}

func (r *KVCampaignRepository) Upsert(ctx context.Context, campaign *models.Campaign) error {
	campaigns, err := r.coll.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range campaigns {
		if campaigns[i].ID == campaign.ID {
			campaigns[i] = *campaign
			replaced = true
			break
		}
	}
	if !replaced {
		campaigns = append(campaigns, *campaign)
	}

	if err := r.coll.save(ctx, campaigns); err != nil {
		return err
	}
	r.coll.notify(store.OpUpsert, campaign.ID)
	return nil
}

// Delete is a hard removal; target product id lists on other campaigns are
// not cleaned up.
func (r *KVCampaignRepository) Delete(ctx context.Context, id string) error {
	campaigns, err := r.coll.load(ctx)
	if err != nil {
		return err
	}

	kept := campaigns[:0]
	found := false
	for _, c := range campaigns {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return ErrNotFound
	}

	if err := r.coll.save(ctx, kept); err != nil {
		return err
	}
	r.coll.notify(store.OpDelete, id)
	return nil
}
