package repository

import (
	"context"

	"laptopcare/internal/domain/entities"
	"laptopcare/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultEngineerLocationsTableName = "engineer_locations"

type engineerLocationItem struct {
	EngineerID string  `dynamodbav:"engineer_id"`
	Latitude   float64 `dynamodbav:"latitude"`
	Longitude  float64 `dynamodbav:"longitude"`
	UpdatedAt  string  `dynamodbav:"updated_at"`
}

// EngineerLocationDynamoRepository persists engineer positions in DynamoDB.
//
// Table requirements:
//   - PK: engineer_id (string)
//
// Put is an unconditional PutItem: one row per engineer, latest write wins.

type EngineerLocationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEngineerLocationRepository = (*EngineerLocationDynamoRepository)(nil)

func NewEngineerLocationDynamoRepository(ddb *dynamodb.Client) *EngineerLocationDynamoRepository {
	return &EngineerLocationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENGINEER_LOCATIONS_TABLE", defaultEngineerLocationsTableName),
	}
}

func (r *EngineerLocationDynamoRepository) Put(ctx context.Context, loc entities.EngineerLocation) (entities.EngineerLocation, error) {
	av, err := attributevalue.MarshalMap(toEngineerLocationItem(loc))
	if err != nil {
		return entities.EngineerLocation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.EngineerLocation{}, err
	}
	return loc, nil
}

func (r *EngineerLocationDynamoRepository) List(ctx context.Context) ([]entities.EngineerLocation, error) {
	locations := make([]entities.EngineerLocation, 0)

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it engineerLocationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			locations = append(locations, fromEngineerLocationItem(it))
		}
	}
	return locations, nil
}

func toEngineerLocationItem(loc entities.EngineerLocation) engineerLocationItem {
	return engineerLocationItem{
		EngineerID: loc.EngineerID,
		Latitude:   loc.Latitude,
		Longitude:  loc.Longitude,
		UpdatedAt:  formatTime(loc.UpdatedAt),
	}
}

func fromEngineerLocationItem(it engineerLocationItem) entities.EngineerLocation {
	return entities.EngineerLocation{
		EngineerID: it.EngineerID,
		Latitude:   it.Latitude,
		Longitude:  it.Longitude,
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
